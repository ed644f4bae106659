// Package itinerary turns the server's day-grouped activity payload
// into render-ready sections: one section per day, entries in the
// server's time order, each annotated with whether it already happened.
package itinerary

import (
	"fmt"
	"time"

	"github.com/plannerapp/planner/internal/calendar"
	"github.com/plannerapp/planner/internal/domain"
)

// Entry is one activity plus its render annotations.
type Entry struct {
	ID     string
	Title  string
	Hour   string // "08:30h"
	IsPast bool   // the activity's time is before "now"
}

// Section is one day of the itinerary. IsEmpty marks days the server
// returned with no activities, so the caller can render a placeholder
// instead of dropping the day.
type Section struct {
	Day     domain.Day
	Entries []Entry
	IsEmpty bool
}

// DayNumber returns the day-of-month for the section header ("Dia 17").
func (s Section) DayNumber() int {
	return s.Day.Time().Day()
}

// DayName returns the pt-BR weekday name for the section header.
func (s Section) DayName() string {
	return calendar.WeekdayName(s.Day)
}

// Sections maps the server's grouping onto itinerary sections.
// The server's day order and per-day activity order are preserved as-is
// (the service returns days ascending and activities time-ordered), and
// days absent from groups are not synthesized — the grouping is
// authoritative, empty days included.
func Sections(groups []domain.DayActivities, now time.Time) []Section {
	sections := make([]Section, 0, len(groups))
	for _, g := range groups {
		s := Section{
			Day:     g.Date,
			Entries: make([]Entry, 0, len(g.Activities)),
			IsEmpty: len(g.Activities) == 0,
		}
		for _, a := range g.Activities {
			s.Entries = append(s.Entries, Entry{
				ID:     a.ID.String(),
				Title:  a.Title,
				Hour:   fmt.Sprintf("%02d:%02dh", a.OccursAt.Hour(), a.OccursAt.Minute()),
				IsPast: a.OccursAt.Before(now),
			})
		}
		sections = append(sections, s)
	}
	return sections
}
