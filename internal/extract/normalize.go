package extract

import "strings"

// Normalize replaces non-breaking spaces with ordinary spaces, collapses any
// run of whitespace to a single space, and trims the result. Idempotent:
// Normalize(Normalize(s)) == Normalize(s) for all inputs.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
