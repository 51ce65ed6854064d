// Copyright 2025 Missingjobs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package jobset

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// Report is the result of comparing an input prefix against an output prefix.
type Report struct {
	InBase      string
	OutBase     string
	InputCount  int      // Distinct input job ids
	OutputCount int      // Distinct output job ids
	Missing     []JobID  // Sorted per Reporter.Order
	Skipped     []string // Malformed names ignored in lenient mode
}

// Files returns the <inbase>.<job_id> name of every missing job, in order.
func (r *Report) Files() []string {
	files := make([]string, len(r.Missing))
	for i, id := range r.Missing {
		files[i] = id.FileName(r.InBase)
	}
	return files
}

// CSV joins the missing ids, leading zeros stripped, with commas.
func (r *Report) CSV() string {
	trimmed := make([]string, len(r.Missing))
	for i, id := range r.Missing {
		trimmed[i] = id.Trimmed()
	}
	return strings.Join(trimmed, ",")
}

// Complete reports whether every input job has an output.
func (r *Report) Complete() bool {
	return len(r.Missing) == 0
}

// Reporter computes the missing jobs between two prefixes.
type Reporter struct {
	Lister        Lister
	Order         Order
	SkipMalformed bool // Log and skip malformed names instead of failing
}

// NewReporter creates a Reporter that reads the filesystem and sorts lexically.
func NewReporter() *Reporter {
	return &Reporter{Lister: GlobLister{}, Order: OrderLexical}
}

// Run lists both prefixes and returns the input jobs that have no output.
// A malformed name aborts the run unless SkipMalformed is set.
func (r *Reporter) Run(inbase, outbase string) (*Report, error) {
	report := &Report{InBase: inbase, OutBase: outbase}

	in, err := r.collect(inbase, report)
	if err != nil {
		return nil, err
	}
	out, err := r.collect(outbase, report)
	if err != nil {
		return nil, err
	}

	report.InputCount = in.Len()
	report.OutputCount = out.Len()
	report.Missing = in.Difference(out).Sorted(r.Order)

	log.Debug().
		Str("inbase", inbase).
		Str("outbase", outbase).
		Int("inputs", report.InputCount).
		Int("outputs", report.OutputCount).
		Int("missing", len(report.Missing)).
		Msg("job sets compared")

	return report, nil
}

func (r *Reporter) collect(prefix string, report *Report) (Set, error) {
	lister := r.Lister
	if lister == nil {
		lister = GlobLister{}
	}

	names, err := lister.List(prefix)
	if err != nil {
		var le *ListingError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &ListingError{Prefix: prefix, Err: err}
	}

	set := make(Set, len(names))
	for _, name := range names {
		id, err := ParseJobID(name)
		if err != nil {
			if !r.SkipMalformed {
				return nil, err
			}
			log.Warn().Err(err).Str("name", name).Msg("skipping malformed job file")
			report.Skipped = append(report.Skipped, name)
			continue
		}
		set.Add(id)
	}
	return set, nil
}
