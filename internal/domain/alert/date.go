// Package alert derives compliance alerts from vehicle records. Everything in
// this package is pure: no I/O, no clock reads, no package state.
package alert

import (
	"time"

	"fleetalert/internal/domain/constants"
	"fleetalert/internal/errors"
)

const day = 24 * time.Hour

// DateOf strips the time of day from t, keeping the calendar date as seen in t's location.
// The result is midnight UTC so that date arithmetic never crosses a DST shift.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	return DateOf(now.In(loc))
}

// DayOffset returns due minus ref in whole calendar days.
func DayOffset(due, ref time.Time) int {
	return int(DateOf(due).Sub(DateOf(ref)) / day)
}

// ParseDate parses a YYYY-MM-DD reference date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", value)
	}

	return DateOf(parsed), nil
}
