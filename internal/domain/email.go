package domain

import "strings"

// NormalizeEmail trims surrounding whitespace and lower-cases an email
// address. Two addresses are considered the same when their normalized
// forms are equal.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email matches a basic local@domain.tld
// grammar: a non-empty local part, a single @, a domain containing at
// least one dot with non-empty labels around it, and no whitespace.
// This is intentionally loose — deliverability is the mail server's
// problem, not ours.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || strings.ContainsAny(email, " \t\n") {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	dom := email[at+1:]
	dot := strings.LastIndex(dom, ".")
	if dot <= 0 || dot == len(dom)-1 {
		return false
	}
	return true
}
