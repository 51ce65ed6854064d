// Copyright 2025 Missingjobs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package jobset

import (
	"errors"
	"fmt"
)

// Common errors returned while collecting job identifiers.
var (
	// ErrMalformedName is returned when a matched file name has no job identifier segment.
	ErrMalformedName = errors.New("malformed job file name")

	// ErrListing is returned when the file lister cannot enumerate a prefix.
	ErrListing = errors.New("cannot list job files")
)

// MalformedNameError wraps ErrMalformedName with the offending name.
type MalformedNameError struct {
	Name     string // Full path as returned by the lister
	Segments int    // Number of dot-delimited segments found in the base name
}

// Error implements the error interface.
func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("%s: %q has %d dot-delimited segment(s), need at least 2", ErrMalformedName, e.Name, e.Segments)
}

// Unwrap returns the underlying error.
func (e *MalformedNameError) Unwrap() error {
	return ErrMalformedName
}

// Is checks if the error matches ErrMalformedName.
func (e *MalformedNameError) Is(target error) bool {
	return target == ErrMalformedName
}

// ListingError wraps ErrListing with the prefix that failed.
type ListingError struct {
	Prefix string
	Err    error
}

// Error implements the error interface.
func (e *ListingError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrListing, e.Prefix, e.Err)
}

// Unwrap returns both the sentinel and the cause so errors.Is matches either.
func (e *ListingError) Unwrap() []error {
	return []error{ErrListing, e.Err}
}
