package appointment

import (
	"strconv"
	"strings"
	"time"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending        Status = "Pending"
	StatusConfirmed      Status = "Confirmed"
	StatusCancelled      Status = "Cancelled"
	StatusCompleted      Status = "Completed"
	StatusPendingInvalid Status = "Pending(invalid)"
)

// Reason explains why a status could not be derived from the schedule.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonMissing   Reason = "missing"
	ReasonMalformed Reason = "malformed"
)

// DisplayStatus is the status shown to the admin. Reason is set whenever the
// scheduled date or time could not be parsed.
type DisplayStatus struct {
	Status Status `json:"status"`
	Reason Reason `json:"reason,omitempty"`
}

func (d DisplayStatus) Color() Color {
	return ColorFor(d.Status)
}

// ParseStatus maps a stored status, in English or in the Spanish spelling the
// backend uses, to its canonical value. Blank input is unset ("").
// Unrecognized values are returned trimmed but otherwise untouched.
func ParseStatus(raw string) Status {
	s := strings.TrimSpace(raw)

	switch strings.ToLower(s) {
	case "":
		return ""
	case "pending", "pendiente":
		return StatusPending
	case "confirmed", "confirmada", "confirmado":
		return StatusConfirmed
	case "cancelled", "canceled", "cancelada", "cancelado":
		return StatusCancelled
	case "completed", "completada", "completado":
		return StatusCompleted
	}

	return Status(s)
}

// IsTerminal reports whether time can no longer change the status.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// ===============================
// Derivation
// ===============================

// DeriveStatus computes the display status of an appointment scheduled at
// date (YYYY-MM-DD) and clock (HH:MM or HH:MM:SS), read as UTC civil time.
// Confirmed and Cancelled are returned as stored. Otherwise the appointment
// is Completed once now is strictly after the scheduled instant.
//
// DeriveStatus never fails: unparseable input yields the stored status, or
// Pending(invalid) when there is none, together with a Reason.
func DeriveStatus(date, clock, stored string, now time.Time) DisplayStatus {
	current := ParseStatus(stored)
	if current.IsTerminal() {
		return DisplayStatus{Status: current}
	}

	at, reason := scheduledAt(date, clock)
	if reason != ReasonNone {
		if current != "" {
			return DisplayStatus{Status: current, Reason: reason}
		}
		return DisplayStatus{Status: StatusPendingInvalid, Reason: reason}
	}

	if now.UTC().After(at) {
		return DisplayStatus{Status: StatusCompleted}
	}

	if current != "" {
		return DisplayStatus{Status: current}
	}
	return DisplayStatus{Status: StatusPending}
}

func scheduledAt(date, clock string) (time.Time, Reason) {
	y, m, d, reason := parseDate(date)
	if reason != ReasonNone {
		return time.Time{}, reason
	}

	hh, mm, ss, reason := parseClock(clock)
	if reason != ReasonNone {
		return time.Time{}, reason
	}

	return time.Date(y, time.Month(m), d, hh, mm, ss, 0, time.UTC), ReasonNone
}

// parseDate accepts YYYY-MM-DD. A full ISO timestamp is cut at the "T" so
// that only its calendar day is used.
func parseDate(raw string) (year, month, day int, reason Reason) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, 0, 0, ReasonMissing
	}
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, ReasonMalformed
	}

	nums, ok := digits(parts)
	if !ok {
		return 0, 0, 0, ReasonMalformed
	}

	year, month, day = nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		return 0, 0, 0, ReasonMalformed
	}

	return year, month, day, ReasonNone
}

func parseClock(raw string) (hour, minute, second int, reason Reason) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, 0, 0, ReasonMissing
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, ReasonMalformed
	}

	nums, ok := digits(parts)
	if !ok {
		return 0, 0, 0, ReasonMalformed
	}

	hour, minute = nums[0], nums[1]
	if len(nums) == 3 {
		second = nums[2]
	}
	if hour > 23 || minute > 59 || second > 59 {
		return 0, 0, 0, ReasonMalformed
	}

	return hour, minute, second, ReasonNone
}

// digits parses every part as an unsigned decimal number.
func digits(parts []string) ([]int, bool) {
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" || len(p) > 4 {
			return nil, false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return nil, false
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ===============================
// Colors
// ===============================

type Color string

const (
	ColorAmber Color = "amber"
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorGray  Color = "gray"
)

// ColorFor is total: anything unrecognized is gray.
func ColorFor(s Status) Color {
	switch ParseStatus(string(s)) {
	case StatusPending:
		return ColorAmber
	case StatusConfirmed:
		return ColorGreen
	case StatusCancelled:
		return ColorRed
	default:
		return ColorGray
	}
}
