package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/kinafsalud/turnos-api/internal/config"
	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
)

func NewRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

// Availability guarda as respostas de disponibilidade por
// (sede, serviço, dia). Uma reserva afeta qualquer agenda que
// compartilhe o profissional, então a invalidação varre o dia inteiro;
// o TTL curto é só rede de segurança.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client) *Availability {
	return &Availability{rdb: rdb, ttl: 30 * time.Second}
}

func key(sedeID, serviceID uuid.UUID, date string) string {
	return fmt.Sprintf("slots:%s:%s:%s", sedeID, serviceID, date)
}

func (c *Availability) Get(
	ctx context.Context,
	sedeID, serviceID uuid.UUID,
	date string,
) ([]domain.Slot, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(sedeID, serviceID, date)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("availability cache read failed", "err", err)
		}
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) Set(
	ctx context.Context,
	sedeID, serviceID uuid.UUID,
	date string,
	slots []domain.Slot,
) {

	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(sedeID, serviceID, date), raw, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "err", err)
	}
}

// Invalidate remove todas as entradas do dia, em qualquer sede e
// serviço: o profissional do turno pode atender em várias agendas.
func (c *Availability) Invalidate(ctx context.Context, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, dayPattern(date), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("availability cache invalidate failed", "err", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("availability cache scan failed", "err", err)
	}
}

func dayPattern(date string) string {
	return fmt.Sprintf("slots:*:*:%s", date)
}
