// Copyright 2025 Missingjobs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package jobset derives job identifiers from job-indexed file names and
// computes which input jobs have no matching output yet.
//
// A job file is named <base>.<job_id>[.<suffix>...]. The identifier is the
// second dot-delimited segment of the file's base name.
package jobset

import (
	"path/filepath"
	"strings"
)

// JobID is an opaque job identifier. It orders lexically unless a numeric
// Order is requested.
type JobID string

// ParseJobID extracts the job identifier from a file name. Any directory
// component is ignored.
func ParseJobID(name string) (JobID, error) {
	base := filepath.Base(name)
	parts := strings.Split(base, ".")
	if len(parts) < 2 {
		return "", &MalformedNameError{Name: name, Segments: len(parts)}
	}
	return JobID(parts[1]), nil
}

// String returns the identifier as written in the file name.
func (id JobID) String() string {
	return string(id)
}

// Trimmed returns the identifier with leading zeros removed. An all-zero
// identifier trims to the empty string.
func (id JobID) Trimmed() string {
	return strings.TrimLeft(string(id), "0")
}

// FileName rebuilds the <base>.<job_id> name reported for a missing job.
func (id JobID) FileName(base string) string {
	return base + "." + string(id)
}
