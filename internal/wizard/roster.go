package wizard

import "github.com/plannerapp/planner/internal/domain"

// Roster is the deduplicated, order-preserving list of guest emails to
// invite. Entries are stored normalized (trimmed, lower-cased); display
// order is first-added first.
type Roster struct {
	emails []string
}

// Add validates, normalizes and appends an email.
// Returns domain.ErrInvalidEmail when the address does not match the
// basic local@domain.tld grammar, and domain.ErrDuplicateEmail when its
// normalized form is already present. The roster is unchanged on error.
func (r *Roster) Add(email string) error {
	if !domain.ValidEmail(email) {
		return domain.ErrInvalidEmail
	}
	normalized := domain.NormalizeEmail(email)
	for _, e := range r.emails {
		if e == normalized {
			return domain.ErrDuplicateEmail
		}
	}
	r.emails = append(r.emails, normalized)
	return nil
}

// Remove drops the entry equal to the normalized email. Removing an
// absent email is a no-op, not an error.
func (r *Roster) Remove(email string) {
	normalized := domain.NormalizeEmail(email)
	for i, e := range r.emails {
		if e == normalized {
			r.emails = append(r.emails[:i], r.emails[i+1:]...)
			return
		}
	}
}

// Emails returns the roster in insertion order. The returned slice is a
// copy; mutating it does not affect the roster.
func (r *Roster) Emails() []string {
	out := make([]string, len(r.emails))
	copy(out, r.emails)
	return out
}

// Len returns the number of invited emails.
func (r *Roster) Len() int { return len(r.emails) }
