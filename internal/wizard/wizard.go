// Package wizard implements the two-step trip-creation flow: trip
// details (destination + dates) first, guest emails second, then an
// explicit confirm before the create call fires. The step is a tagged
// state rather than a numeric flag so "guest step with incomplete
// details" is unrepresentable.
package wizard

import (
	"strings"

	"github.com/plannerapp/planner/internal/calendar"
	"github.com/plannerapp/planner/internal/domain"
)

// Step identifies which wizard screen is active.
type Step int

const (
	StepTripDetails Step = iota
	StepAddGuests
)

// minDestinationLen is the shortest accepted destination, in runes,
// after trimming.
const minDestinationLen = 4

// Wizard holds the in-progress trip draft. Destination and Dates stay
// editable on either step; validation runs only when advancing.
// The zero value is not usable — construct with New.
type Wizard struct {
	step        Step
	Destination string
	Dates       calendar.Selection
	Guests      Roster

	submitting bool
}

// New returns an empty wizard on the trip-details step.
func New() *Wizard {
	return &Wizard{step: StepTripDetails}
}

// Step returns the currently active step.
func (w *Wizard) Step() Step { return w.step }

// SelectDay folds a calendar tap into the draft's date selection.
func (w *Wizard) SelectDay(day domain.Day) {
	w.Dates = calendar.Select(w.Dates, day)
}

// Advance validates the draft and moves the wizard forward. From
// StepTripDetails it transitions to StepAddGuests; from StepAddGuests
// it re-runs the same checks (the details stayed editable in the
// meantime) and leaves the wizard ready for BeginSubmit. Validation
// failures leave step and draft untouched.
func (w *Wizard) Advance() error {
	if err := w.validateDetails(); err != nil {
		return err
	}
	if w.step == StepTripDetails {
		w.step = StepAddGuests
	}
	return nil
}

// Back returns to the trip-details step without discarding anything.
func (w *Wizard) Back() {
	w.step = StepTripDetails
}

// BeginSubmit marks the create call as in flight. It fails with
// domain.ErrValidation-wrapped errors if the draft no longer passes the
// guests-step gate, and with ErrSubmitInFlight while a previous submit
// has not finished — one tap, one create call.
func (w *Wizard) BeginSubmit() error {
	if w.submitting {
		return ErrSubmitInFlight
	}
	if w.step != StepAddGuests {
		return domain.ErrMissingFields
	}
	if err := w.validateDetails(); err != nil {
		return err
	}
	w.submitting = true
	return nil
}

// FinishSubmit clears the in-flight flag, whatever the call's outcome.
// On success the wizard is normally discarded; on failure the user may
// retry, which requires another BeginSubmit.
func (w *Wizard) FinishSubmit() {
	w.submitting = false
}

// Submitting reports whether a create call is outstanding.
func (w *Wizard) Submitting() bool { return w.submitting }

// Payload returns the create-trip request fields for the current draft.
func (w *Wizard) Payload() Payload {
	return Payload{
		Destination:    strings.TrimSpace(w.Destination),
		StartsAt:       w.Dates.Start,
		EndsAt:         w.Dates.End,
		EmailsToInvite: w.Guests.Emails(),
	}
}

// Payload carries the fields of a create-trip call.
type Payload struct {
	Destination    string
	StartsAt       domain.Day
	EndsAt         domain.Day
	EmailsToInvite []string
}

// validateDetails is the gate shared by Advance and BeginSubmit.
func (w *Wizard) validateDetails() error {
	dest := strings.TrimSpace(w.Destination)
	if dest == "" || !w.Dates.Complete() {
		return domain.ErrMissingFields
	}
	if len([]rune(dest)) < minDestinationLen {
		return domain.ErrDestinationTooShort
	}
	return nil
}
