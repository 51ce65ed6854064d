// Copyright 2025 Missingjobs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package jobset

import (
	"fmt"
	"sort"
	"strings"
)

// Order selects how identifiers are sorted for display.
type Order string

const (
	// OrderLexical sorts identifiers as plain strings ("10" before "9").
	OrderLexical Order = "lexical"
	// OrderNumeric sorts all-digit identifiers by value, then the rest lexically.
	OrderNumeric Order = "numeric"
)

// ParseOrder converts a string to an Order.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(s)) {
	case "", OrderLexical:
		return OrderLexical, nil
	case OrderNumeric:
		return OrderNumeric, nil
	default:
		return "", fmt.Errorf("invalid sort order: %s (must be 'lexical' or 'numeric')", s)
	}
}

// Set is an unordered collection of unique job identifiers.
type Set map[JobID]struct{}

// NewSet creates a Set holding ids.
func NewSet(ids ...JobID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id. Adding an existing id is a no-op.
func (s Set) Add(id JobID) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s Set) Has(id JobID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers.
func (s Set) Len() int {
	return len(s)
}

// Difference returns the identifiers in s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for id := range s {
		if !other.Has(id) {
			out.Add(id)
		}
	}
	return out
}

// Sorted returns the identifiers in ascending order.
func (s Set) Sorted(order Order) []JobID {
	ids := make([]JobID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}

	if order == OrderNumeric {
		sort.Slice(ids, func(i, j int) bool { return numericLess(ids[i], ids[j]) })
		return ids
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// numericLess orders all-digit ids by value before any non-numeric id.
// Values compare by trimmed width then digits, so ids of any length order
// exactly. Equal values ("7" and "007") fall back to string order.
func numericLess(a, b JobID) bool {
	aok, bok := isNumeric(a), isNumeric(b)

	switch {
	case aok && bok:
		at, bt := a.Trimmed(), b.Trimmed()
		if len(at) != len(bt) {
			return len(at) < len(bt)
		}
		if at != bt {
			return at < bt
		}
		return a < b
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

func isNumeric(id JobID) bool {
	if id == "" {
		return false
	}
	for _, r := range string(id) {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
