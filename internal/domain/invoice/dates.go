package invoice

import (
	"fmt"
	"strings"
	"time"
)

const notAvailable = "N/A"

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatLongDate renders t as "22 de mayo de 2025".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), monthsES[t.Month()-1], t.Year())
}

// FormatLongDateTime renders t as "22 de mayo de 2025, 10:05".
func FormatLongDateTime(t time.Time) string {
	return fmt.Sprintf("%s, %02d:%02d", FormatLongDate(t), t.Hour(), t.Minute())
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp reads the date formats the upstream API emits. Bare dates
// are calendar days and keep UTC.
func parseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// serviceDate formats the calendar day of the appointment. The day is taken
// as written, never shifted into another zone.
func serviceDate(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return notAvailable
	}
	return FormatLongDate(t)
}

func confirmedAt(raw string, loc *time.Location) string {
	t, ok := parseTimestamp(raw)
	if !ok {
		return ""
	}
	return FormatLongDateTime(t.In(loc))
}
