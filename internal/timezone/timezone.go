package timezone

import "time"

// DefaultTimezone is where the barbershops operate. Invoice timestamps are
// rendered in it.
const DefaultTimezone = "America/La_Paz"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone and then to a fixed
// UTC-4 zone when the tz database is unavailable.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.FixedZone("BOT", -4*60*60)
}

// Now is the clock used for status derivation. Appointment times are
// compared in UTC.
func Now() time.Time {
	return time.Now().UTC()
}
