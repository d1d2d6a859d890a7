package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/kinafsalud/turnos-api/internal/domain/appointment"
)

func testCache(t *testing.T) *Availability {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewAvailability(rdb)
}

func someSlots() []domain.Slot {
	return []domain.Slot{{
		Time:         "09:00",
		Professional: domain.ProfessionalRef{ID: uuid.New(), FirstName: "Ana"},
	}}
}

func TestAvailability_RoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	sedeID, serviceID := uuid.New(), uuid.New()

	if _, ok := c.Get(ctx, sedeID, serviceID, "2026-09-07"); ok {
		t.Fatalf("hit on empty cache")
	}

	want := someSlots()
	c.Set(ctx, sedeID, serviceID, "2026-09-07", want)

	got, ok := c.Get(ctx, sedeID, serviceID, "2026-09-07")
	if !ok || len(got) != 1 || got[0].Time != "09:00" {
		t.Fatalf("got = %v, ok = %v, want the cached slots", got, ok)
	}
}

// Uma reserva deve derrubar o cache do dia inteiro: o mesmo
// profissional pode aparecer em outras sedes e serviços.
func TestAvailability_InvalidateCoversWholeDay(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	sedeA, sedeB := uuid.New(), uuid.New()
	serviceA, serviceB := uuid.New(), uuid.New()

	c.Set(ctx, sedeA, serviceA, "2026-09-07", someSlots())
	c.Set(ctx, sedeB, serviceB, "2026-09-07", someSlots())
	c.Set(ctx, sedeA, serviceA, "2026-09-08", someSlots())

	c.Invalidate(ctx, "2026-09-07")

	if _, ok := c.Get(ctx, sedeA, serviceA, "2026-09-07"); ok {
		t.Fatalf("booked combination still cached")
	}
	if _, ok := c.Get(ctx, sedeB, serviceB, "2026-09-07"); ok {
		t.Fatalf("sibling sede/service of the same day still cached")
	}
	if _, ok := c.Get(ctx, sedeA, serviceA, "2026-09-08"); !ok {
		t.Fatalf("other day was invalidated too")
	}
}

func TestAvailability_NilSafe(t *testing.T) {
	var c *Availability
	ctx := context.Background()

	if _, ok := c.Get(ctx, uuid.New(), uuid.New(), "2026-09-07"); ok {
		t.Fatalf("nil cache reported a hit")
	}
	c.Set(ctx, uuid.New(), uuid.New(), "2026-09-07", someSlots())
	c.Invalidate(ctx, "2026-09-07")
}
