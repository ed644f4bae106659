package calendar

import (
	"fmt"
	"time"

	"github.com/plannerapp/planner/internal/domain"
)

// The app is pt-BR end to end, so the locale tables are compiled in.

// monthsShort are the pt-BR abbreviated month names, indexed by
// time.Month - 1.
var monthsShort = [12]string{
	"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
	"jul.", "ago.", "set.", "out.", "nov.", "dez.",
}

// weekdays are the pt-BR weekday names, indexed by time.Weekday,
// with the "-feira" suffix already stripped.
var weekdays = [7]string{
	"domingo", "segunda", "terça", "quarta", "quinta", "sexta", "sábado",
}

// MonthAbbr returns the pt-BR short month name ("mar.") for m.
func MonthAbbr(m time.Month) string {
	return monthsShort[m-1]
}

// WeekdayName returns the pt-BR weekday name for d, without the
// "-feira" suffix ("segunda", not "segunda-feira").
func WeekdayName(d domain.Day) string {
	return weekdays[d.Time().Weekday()]
}

// Label formats a completed selection as "12 de mar. até 18 de mar.".
// Returns the empty string while either bound is missing.
func (s Selection) Label() string {
	if !s.Complete() {
		return ""
	}
	st, en := s.Start.Time(), s.End.Time()
	return fmt.Sprintf("%d de %s até %d de %s",
		st.Day(), MonthAbbr(st.Month()),
		en.Day(), MonthAbbr(en.Month()))
}

// maxHeaderDestination is the longest destination shown untruncated in
// the trip header.
const maxHeaderDestination = 14

// FormatWhen builds the trip header line shown above the itinerary,
// e.g. "Florianópolis de 10 a 15 de mar.". Long destinations are
// truncated with an ellipsis.
func FormatWhen(destination string, startsAt, endsAt domain.Day) string {
	if r := []rune(destination); len(r) > maxHeaderDestination {
		destination = string(r[:maxHeaderDestination]) + "..."
	}
	st, en := startsAt.Time(), endsAt.Time()
	return fmt.Sprintf("%s de %02d a %02d de %s",
		destination, st.Day(), en.Day(), MonthAbbr(st.Month()))
}
