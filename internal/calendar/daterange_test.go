package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerapp/planner/internal/calendar"
	"github.com/plannerapp/planner/internal/domain"
)

func day(t *testing.T, s string) domain.Day {
	t.Helper()
	d, err := domain.ParseDay(s)
	require.NoError(t, err)
	return d
}

// ---- Select ----------------------------------------------------------------

func TestSelect_FirstTapBecomesStart(t *testing.T) {
	got := calendar.Select(calendar.Selection{}, day(t, "2024-03-10"))

	assert.Equal(t, day(t, "2024-03-10"), got.Start)
	assert.True(t, got.End.IsZero())
}

func TestSelect_SecondTapAfterStartClosesRange(t *testing.T) {
	cur := calendar.Selection{Start: day(t, "2024-03-10")}

	got := calendar.Select(cur, day(t, "2024-03-15"))

	assert.Equal(t, day(t, "2024-03-10"), got.Start)
	assert.Equal(t, day(t, "2024-03-15"), got.End)
}

func TestSelect_SecondTapBeforeStartSwaps(t *testing.T) {
	cur := calendar.Selection{Start: day(t, "2024-03-10")}

	// Tapping an earlier day makes it the start, not an error.
	got := calendar.Select(cur, day(t, "2024-03-05"))

	assert.Equal(t, day(t, "2024-03-05"), got.Start)
	assert.Equal(t, day(t, "2024-03-10"), got.End)
}

func TestSelect_SecondTapOnStartMakesOneDayTrip(t *testing.T) {
	cur := calendar.Selection{Start: day(t, "2024-03-10")}

	got := calendar.Select(cur, day(t, "2024-03-10"))

	assert.Equal(t, got.Start, got.End)
}

func TestSelect_ThirdTapStartsOver(t *testing.T) {
	cur := calendar.Selection{Start: day(t, "2024-03-10"), End: day(t, "2024-03-15")}

	// Wherever the new tap falls — inside, before or after the old range —
	// it always begins a fresh selection.
	for _, tap := range []string{"2024-03-12", "2024-03-01", "2024-03-20"} {
		got := calendar.Select(cur, day(t, tap))

		assert.Equal(t, day(t, tap), got.Start)
		assert.True(t, got.End.IsZero())
	}
}

func TestSelect_TapSequenceInvariants(t *testing.T) {
	taps := []string{
		"2024-03-10", "2024-03-15", "2024-03-03", "2024-03-01",
		"2024-03-20", "2024-03-20", "2024-02-28", "2024-03-05",
	}

	var sel calendar.Selection
	for i, tap := range taps {
		sel = calendar.Select(sel, day(t, tap))

		if i%2 == 0 {
			// Odd-numbered tap: a range has just been opened.
			assert.True(t, sel.End.IsZero(), "tap %d", i+1)
		} else {
			// Even-numbered tap: the range is closed and ordered.
			require.True(t, sel.Complete(), "tap %d", i+1)
			assert.False(t, sel.End.Before(sel.Start), "tap %d", i+1)
		}
	}
}

// ---- MarkedDates -----------------------------------------------------------

func TestMarkedDates_EmptySelection(t *testing.T) {
	assert.Empty(t, calendar.Selection{}.MarkedDates())
}

func TestMarkedDates_SingleDay(t *testing.T) {
	sel := calendar.Selection{Start: day(t, "2024-03-10"), End: day(t, "2024-03-10")}

	marks := sel.MarkedDates()

	require.Len(t, marks, 1)
	assert.Equal(t, calendar.MarkSingle, marks[day(t, "2024-03-10")])
}

func TestMarkedDates_FullRange(t *testing.T) {
	// Tap 2024-03-10, then 2024-03-15: six days, first start, last end,
	// the four between middle.
	sel := calendar.Select(calendar.Selection{}, day(t, "2024-03-10"))
	sel = calendar.Select(sel, day(t, "2024-03-15"))

	marks := sel.MarkedDates()

	require.Len(t, marks, 6)
	assert.Equal(t, calendar.MarkStart, marks[day(t, "2024-03-10")])
	assert.Equal(t, calendar.MarkEnd, marks[day(t, "2024-03-15")])
	for _, d := range []string{"2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14"} {
		assert.Equal(t, calendar.MarkMiddle, marks[day(t, d)], d)
	}
}

func TestMarkedDates_SpansMonthBoundary(t *testing.T) {
	sel := calendar.Selection{Start: day(t, "2024-02-28"), End: day(t, "2024-03-01")}

	marks := sel.MarkedDates()

	// 2024 is a leap year: feb 29 sits in the middle.
	require.Len(t, marks, 3)
	assert.Equal(t, calendar.MarkMiddle, marks[day(t, "2024-02-29")])
}
