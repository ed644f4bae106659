package domain

import (
	"fmt"
	"time"
)

// dayLayout is the wire format for calendar days: an ISO date with no
// time component.
const dayLayout = "2006-01-02"

// Day is a single calendar date, stored as an ISO "2006-01-02" string.
// For ISO dates lexical order equals temporal order, so Days compare
// correctly with < and are safe map keys. The zero value "" means
// "no day selected".
type Day string

// ParseDay parses an ISO "2006-01-02" string into a Day.
func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(dayLayout, s); err != nil {
		return "", fmt.Errorf("domain.ParseDay: %w", err)
	}
	return Day(s), nil
}

// DayOf truncates a timestamp to its calendar date, in the timestamp's
// own location.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// IsZero reports whether no day is set.
func (d Day) IsZero() bool { return d == "" }

// Before reports whether d falls strictly before other.
func (d Day) Before(other Day) bool { return d < other }

// After reports whether d falls strictly after other.
func (d Day) After(other Day) bool { return d > other }

// Time returns the day as a UTC midnight timestamp.
// A zero Day yields the zero time.
func (d Day) Time() time.Time {
	t, _ := time.Parse(dayLayout, string(d))
	return t
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return DayOf(d.Time().AddDate(0, 0, 1))
}

// String returns the ISO form.
func (d Day) String() string { return string(d) }
