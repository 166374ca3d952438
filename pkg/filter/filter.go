// Package filter decides row visibility from a search query.
package filter

import "strings"

// Matches reports whether text contains query, ignoring case. An empty query
// matches everything.
func Matches(text, query string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// Predicate binds query for repeated use over many rows.
func Predicate(query string) func(text string) bool {
	return func(text string) bool {
		return Matches(text, query)
	}
}
