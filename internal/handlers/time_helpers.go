package handlers

import (
	"time"

	"github.com/kinafsalud/turnos-api/internal/timezone"
)

// parseDate interpreta YYYY-MM-DD à meia-noite no fuso da clínica.
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

// parseClockString valida "HH:MM" (24h).
func parseClockString(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}
