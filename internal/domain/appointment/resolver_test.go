package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kinafsalud/turnos-api/internal/models"
)

func pro(first, last string) *models.User {
	return &models.User{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
		Email:     first + "@kinaf.com",
		Role:      models.RoleProfessional,
		Active:    true,
	}
}

func schedule(p *models.User, start, end string) models.Schedule {
	sc := models.Schedule{
		ID:        uuid.New(),
		Weekday:   1,
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}
	if p != nil {
		sc.ProfessionalID = p.ID
		sc.Professional = p
	}
	return sc
}

func booking(p *models.User, startTime, status string) models.Appointment {
	return models.Appointment{
		ID:             uuid.New(),
		ProfessionalID: p.ID,
		Date:           time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:      startTime,
		Status:         status,
	}
}

func times(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestResolveSlots_HourlyGranularity(t *testing.T) {
	p := pro("Juan", "Kinesiologo")

	slots := ResolveSlots([]models.Schedule{schedule(p, "09:00", "12:00")}, nil, 60)

	want := []string{"09:00", "10:00", "11:00"}
	got := times(slots)
	if len(got) != len(want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slots = %v, want %v", got, want)
		}
	}
	for _, s := range slots {
		if s.Professional.ID != p.ID {
			t.Fatalf("professional = %v, want %v", s.Professional.ID, p.ID)
		}
	}
}

func TestResolveSlots_ConflictExcluded(t *testing.T) {
	p := pro("Juan", "Kinesiologo")

	slots := ResolveSlots(
		[]models.Schedule{schedule(p, "09:00", "12:00")},
		[]models.Appointment{booking(p, "10:00", string(StatusPending))},
		60,
	)

	got := times(slots)
	if len(got) != 2 || got[0] != "09:00" || got[1] != "11:00" {
		t.Fatalf("slots = %v, want [09:00 11:00]", got)
	}
}

func TestResolveSlots_CancelledFreesSlot(t *testing.T) {
	p := pro("Juan", "Kinesiologo")

	slots := ResolveSlots(
		[]models.Schedule{schedule(p, "09:00", "12:00")},
		[]models.Appointment{booking(p, "10:00", string(StatusCancelled))},
		60,
	)

	if len(slots) != 3 {
		t.Fatalf("slots = %v, want all three back", times(slots))
	}
}

func TestResolveSlots_ConflictIsPerProfessional(t *testing.T) {
	p1 := pro("Juan", "Kinesiologo")
	p2 := pro("Ana", "Pilates")

	slots := ResolveSlots(
		[]models.Schedule{
			schedule(p1, "09:00", "11:00"),
			schedule(p2, "09:00", "11:00"),
		},
		[]models.Appointment{booking(p1, "09:00", string(StatusConfirmed))},
		60,
	)

	// p1 perde 09:00, p2 mantém os dois
	got := times(slots)
	if len(got) != 3 {
		t.Fatalf("slots = %v, want 3 entries", got)
	}
	if got[0] != "10:00" || got[1] != "09:00" || got[2] != "10:00" {
		t.Fatalf("slots = %v, want [10:00 09:00 10:00] (schedule order, no cross sort)", got)
	}
}

func TestResolveSlots_DanglingProfessionalSkipped(t *testing.T) {
	p := pro("Juan", "Kinesiologo")

	slots := ResolveSlots(
		[]models.Schedule{
			schedule(nil, "09:00", "12:00"),
			schedule(p, "14:00", "16:00"),
		},
		nil,
		60,
	)

	got := times(slots)
	if len(got) != 2 || got[0] != "14:00" || got[1] != "15:00" {
		t.Fatalf("slots = %v, want only the resolvable schedule", got)
	}
}

func TestResolveSlots_NoSchedulesEmptyNotNil(t *testing.T) {
	slots := ResolveSlots(nil, nil, 60)
	if slots == nil || len(slots) != 0 {
		t.Fatalf("slots = %v, want empty list", slots)
	}
}

func TestResolveSlots_FractionalBoundsAlignDown(t *testing.T) {
	p := pro("Juan", "Kinesiologo")

	// 09:30–17:30 com granularidade de 60 vira 09:00–17:00
	slots := ResolveSlots([]models.Schedule{schedule(p, "09:30", "17:30")}, nil, 60)

	got := times(slots)
	if len(got) != 8 {
		t.Fatalf("slots = %v, want 8 entries 09:00..16:00", got)
	}
	if got[0] != "09:00" || got[len(got)-1] != "16:00" {
		t.Fatalf("slots = %v, want first 09:00 and last 16:00", got)
	}
}

func TestResolveSlots_HalfHourGranularity(t *testing.T) {
	p := pro("Juan", "Kinesiologo")

	slots := ResolveSlots([]models.Schedule{schedule(p, "09:00", "11:00")}, nil, 30)

	want := []string{"09:00", "09:30", "10:00", "10:30"}
	got := times(slots)
	if len(got) != len(want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slots = %v, want %v", got, want)
		}
	}
}

func TestResolveSlots_BadClockStringsSkipped(t *testing.T) {
	p := pro("Juan", "Kinesiologo")

	slots := ResolveSlots([]models.Schedule{schedule(p, "xx:00", "12:00")}, nil, 60)
	if len(slots) != 0 {
		t.Fatalf("slots = %v, want none for unparseable schedule", times(slots))
	}
}

func TestCoversSlot(t *testing.T) {
	p := pro("Juan", "Kinesiologo")
	sc := schedule(p, "09:30", "12:00")

	cases := []struct {
		hm   string
		want bool
	}{
		{"09:00", true},  // alinhado para baixo
		{"10:00", true},
		{"11:00", true},
		{"12:00", false}, // fim exclusivo
		{"08:00", false},
		{"10:30", false}, // fora da grade de 60
		{"bogus", false},
	}

	for _, c := range cases {
		if got := CoversSlot(sc, c.hm, 60); got != c.want {
			t.Fatalf("CoversSlot(%q) = %v, want %v", c.hm, got, c.want)
		}
	}
}

func TestEndTimeFor(t *testing.T) {
	if got := EndTimeFor("09:00", 60); got != "10:00" {
		t.Fatalf("EndTimeFor = %q, want 10:00", got)
	}
	if got := EndTimeFor("10:15", 45); got != "11:00" {
		t.Fatalf("EndTimeFor = %q, want 11:00", got)
	}
	if got := EndTimeFor("bogus", 60); got != "" {
		t.Fatalf("EndTimeFor = %q, want empty", got)
	}
}
