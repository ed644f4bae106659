// Package calendar implements the tap-driven date-range selection used
// by the trip wizard: a sequence of single-day taps is folded into an
// ordered [start, end] range plus per-day markings for rendering.
package calendar

import "github.com/plannerapp/planner/internal/domain"

// Selection is a possibly-incomplete date range. The zero value means
// nothing is selected. When both bounds are set, Start <= End always
// holds (a one-day trip has Start == End).
type Selection struct {
	Start domain.Day
	End   domain.Day
}

// Complete reports whether both bounds are set.
func (s Selection) Complete() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

// Select folds one tapped day into the current selection:
//
//  1. no start yet       → the tap becomes the new start
//  2. start but no end   → the tap closes the range; a tap before the
//     start swaps rather than rejects, so the earlier day is always
//     Start (tapping the start day again yields a one-day range)
//  3. range already done → the tap begins a brand-new selection
//
// Select enforces no minimum date; rejecting taps before "today" is the
// caller's job (the UI disables such days before calling).
func Select(cur Selection, tapped domain.Day) Selection {
	switch {
	case cur.Start.IsZero():
		return Selection{Start: tapped}
	case cur.End.IsZero():
		if tapped.Before(cur.Start) {
			return Selection{Start: tapped, End: cur.Start}
		}
		return Selection{Start: cur.Start, End: tapped}
	default:
		return Selection{Start: tapped}
	}
}

// Marking describes a day's position within a selected range. Renderers
// use it to pick the pill shape for the day cell.
type Marking string

const (
	MarkStart  Marking = "start"
	MarkMiddle Marking = "middle"
	MarkEnd    Marking = "end"
	MarkSingle Marking = "single"
)

// MarkedDates maps every day from Start to End inclusive to its Marking.
// A selection with only a start yields that single day marked MarkSingle;
// an empty selection yields an empty map.
func (s Selection) MarkedDates() map[domain.Day]Marking {
	marks := make(map[domain.Day]Marking)
	if s.Start.IsZero() {
		return marks
	}
	end := s.End
	if end.IsZero() {
		end = s.Start
	}
	if s.Start == end {
		marks[s.Start] = MarkSingle
		return marks
	}
	marks[s.Start] = MarkStart
	for d := s.Start.Next(); d.Before(end); d = d.Next() {
		marks[d] = MarkMiddle
	}
	marks[end] = MarkEnd
	return marks
}
