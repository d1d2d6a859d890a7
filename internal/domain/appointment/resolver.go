package appointment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kinafsalud/turnos-api/internal/models"
)

// ResolveSlots combina as agendas semanais do dia com os turnos já
// reservados e devolve os horários livres.
//
// Regras:
//   - agendas sem profissional resolvível são puladas, não falham;
//   - os limites da agenda são alinhados para baixo na granularidade
//     (ex.: 09:30–17:30 com 60min vira 09:00–17:00);
//   - um horário está ocupado quando existe turno não-cancelado do
//     mesmo profissional com a mesma string de início;
//   - a ordem de saída segue a ordem das agendas e, dentro de cada
//     agenda, a hora crescente. Não há sort entre agendas.
func ResolveSlots(
	schedules []models.Schedule,
	booked []models.Appointment,
	slotMinutes int,
) []Slot {

	if slotMinutes <= 0 {
		slotMinutes = 60
	}

	taken := make(map[string]struct{}, len(booked))
	for _, ap := range booked {
		if ap.Status == string(StatusCancelled) {
			continue
		}
		taken[ap.ProfessionalID.String()+"|"+ap.StartTime] = struct{}{}
	}

	slots := []Slot{}

	for _, sc := range schedules {
		if sc.Professional == nil {
			continue
		}

		startMin, err := parseClock(sc.StartTime)
		if err != nil {
			continue
		}
		endMin, err := parseClock(sc.EndTime)
		if err != nil {
			continue
		}

		pro := ProfessionalRef{
			ID:        sc.Professional.ID,
			FirstName: sc.Professional.FirstName,
			LastName:  sc.Professional.LastName,
			Email:     sc.Professional.Email,
		}

		start := alignDown(startMin, slotMinutes)
		end := alignDown(endMin, slotMinutes)

		for cur := start; cur < end; cur += slotMinutes {
			t := formatClock(cur)
			if _, ok := taken[pro.ID.String()+"|"+t]; ok {
				continue
			}
			slots = append(slots, Slot{Time: t, Professional: pro})
		}
	}

	return slots
}

// CoversSlot informa se a agenda oferta o horário startHM na
// granularidade dada (mesmo alinhamento usado por ResolveSlots).
func CoversSlot(sc models.Schedule, startHM string, slotMinutes int) bool {
	if slotMinutes <= 0 {
		slotMinutes = 60
	}

	want, err := parseClock(startHM)
	if err != nil {
		return false
	}
	startMin, err := parseClock(sc.StartTime)
	if err != nil {
		return false
	}
	endMin, err := parseClock(sc.EndTime)
	if err != nil {
		return false
	}

	start := alignDown(startMin, slotMinutes)
	end := alignDown(endMin, slotMinutes)

	if want < start || want >= end {
		return false
	}
	return (want-start)%slotMinutes == 0
}

// EndTimeFor devolve o fim "HH:MM" de um turno que começa em startHM
// e dura durationMin. Vazio quando startHM não parseia.
func EndTimeFor(startHM string, durationMin int) string {
	start, err := parseClock(startHM)
	if err != nil {
		return ""
	}
	return formatClock(start + durationMin)
}

func parseClock(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock %q", hm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour %q", hm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute %q", hm)
	}
	return h*60 + m, nil
}

func alignDown(minutes, step int) int {
	return minutes - minutes%step
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
