// Package viewstate derives the values each screen renders from its record
// collection: filtered subsets, totals, chart heights and percentages.
// Every function is pure and never mutates its input.
package viewstate

import "strings"

// All is the pass-through filter tag shared by every screen
const All = "all"

// Filter returns the elements of items satisfying keep, in input order.
// The result is never nil so it encodes as an empty JSON array.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// FilterByStatus keeps the items whose status equals tag exactly.
// "all" (or an empty tag) returns a copy of items; a tag no item carries
// yields an empty result.
func FilterByStatus[T any, S ~string](items []T, tag string, status func(T) S) []T {
	if tag == "" || tag == All {
		return Filter(items, func(T) bool { return true })
	}
	return Filter(items, func(item T) bool { return string(status(item)) == tag })
}

// FilterByStatusSet keeps the items whose status is a member of set.
func FilterByStatusSet[T any, S comparable](items []T, set []S, status func(T) S) []T {
	members := make(map[S]struct{}, len(set))
	for _, s := range set {
		members[s] = struct{}{}
	}
	return Filter(items, func(item T) bool {
		_, ok := members[status(item)]
		return ok
	})
}

// MatchesQuery reports whether any field contains query, ignoring case.
// An empty query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Search keeps the items where any of the fields returned by fields
// contains query, ignoring case.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	return Filter(items, func(item T) bool {
		return MatchesQuery(query, fields(item)...)
	})
}

// CountBy groups items by key and counts each group
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}
