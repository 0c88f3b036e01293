package domain

import (
	"strings"
	"unicode"
)

// NormalizeHumanName trims leading/trailing whitespace and collapses internal whitespace runs.
// It is used for profile names and destinations.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SlugifyDestination lowercases s and replaces every character outside [a-z0-9]
// with an underscore, one underscore per replaced character.
func SlugifyDestination(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
