// Copyright 2025 Missingjobs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/jobtools/missingjobs/pkg/jobset"
)

// OutputMode defines the output format for the report
type OutputMode string

const (
	// ModeText prints one <inbase>.<job_id> line per missing job
	ModeText OutputMode = "text"
	// ModeCSV prints missing job ids on one comma separated line
	ModeCSV OutputMode = "csv"
	// ModeJSON outputs the report as JSON
	ModeJSON OutputMode = "json"
	// ModeYAML outputs the report as YAML
	ModeYAML OutputMode = "yaml"
)

// Formatter renders reports and errors for the CLI
type Formatter interface {
	// PrintReport writes the missing jobs to stdout in the configured mode
	PrintReport(report *jobset.Report) error

	// PrintSummary writes a one-line count summary to stderr
	PrintSummary(report *jobset.Report) error

	// PrintWarnings writes one stderr line per malformed name that was skipped
	PrintWarnings(report *jobset.Report) error

	// PrintError outputs an error to stderr (or JSON to stdout in JSON mode)
	PrintError(err error) error
}

// formatter implements the Formatter interface
type formatter struct {
	stdout io.Writer
	stderr io.Writer
	mode   OutputMode
	color  bool
}

// New creates a new Formatter
func New(stdout, stderr io.Writer, mode OutputMode, color bool) Formatter {
	return &formatter{
		stdout: stdout,
		stderr: stderr,
		mode:   mode,
		color:  color,
	}
}

type missingJob struct {
	JobID string `json:"job_id" yaml:"job_id"`
	File  string `json:"file" yaml:"file"`
}

// reportView is the structured form of a report for json and yaml output
type reportView struct {
	InBase      string       `json:"inbase" yaml:"inbase"`
	OutBase     string       `json:"outbase" yaml:"outbase"`
	InputCount  int          `json:"input_count" yaml:"input_count"`
	OutputCount int          `json:"output_count" yaml:"output_count"`
	Missing     []missingJob `json:"missing" yaml:"missing"`
	Skipped     []string     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

func newReportView(r *jobset.Report) reportView {
	view := reportView{
		InBase:      r.InBase,
		OutBase:     r.OutBase,
		InputCount:  r.InputCount,
		OutputCount: r.OutputCount,
		Missing:     make([]missingJob, 0, len(r.Missing)),
		Skipped:     r.Skipped,
	}
	for _, id := range r.Missing {
		view.Missing = append(view.Missing, missingJob{JobID: id.String(), File: id.FileName(r.InBase)})
	}
	return view
}

// PrintReport writes the missing jobs to stdout in the configured mode.
// Text and csv modes print nothing when no job is missing.
func (f *formatter) PrintReport(report *jobset.Report) error {
	switch f.mode {
	case ModeJSON:
		return f.printJSON(newReportView(report))
	case ModeYAML:
		enc := yaml.NewEncoder(f.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(newReportView(report)); err != nil {
			return err
		}
		return enc.Close()
	case ModeCSV:
		if report.Complete() {
			return nil
		}
		_, err := fmt.Fprintln(f.stdout, report.CSV())
		return err
	default:
		for _, name := range report.Files() {
			if _, err := fmt.Fprintln(f.stdout, name); err != nil {
				return err
			}
		}
		return nil
	}
}

// PrintSummary writes a one-line count summary to stderr
func (f *formatter) PrintSummary(report *jobset.Report) error {
	var message string
	switch {
	case report.Complete():
		message = fmt.Sprintf("✓ all %d %s complete", report.InputCount, plural(report.InputCount))
	default:
		message = fmt.Sprintf("✗ %d of %d %s missing", len(report.Missing), report.InputCount, plural(report.InputCount))
	}
	if n := len(report.Skipped); n > 0 {
		message += fmt.Sprintf(" (%d malformed %s skipped)", n, pluralName(n))
	}

	if !f.color {
		_, err := fmt.Fprintln(f.stderr, message)
		return err
	}

	c := color.New(color.FgGreen)
	if !report.Complete() {
		c = color.New(color.FgYellow)
	}
	_, err := c.Fprintln(f.stderr, message)
	return err
}

// PrintWarnings writes one stderr line per malformed name that was skipped
func (f *formatter) PrintWarnings(report *jobset.Report) error {
	for _, name := range report.Skipped {
		message := fmt.Sprintf("Warning: skipped malformed job file name %q", name)

		var err error
		if f.color {
			_, err = color.New(color.FgYellow).Fprintln(f.stderr, message)
		} else {
			_, err = fmt.Fprintln(f.stderr, message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PrintError outputs an error to stderr (or JSON to stdout in JSON mode)
func (f *formatter) PrintError(err error) error {
	if err == nil {
		return nil
	}

	if f.mode == ModeJSON {
		return f.printJSON(map[string]any{
			"success": false,
			"error":   err.Error(),
		})
	}

	var writeErr error
	if f.color {
		_, writeErr = color.New(color.FgRed).Fprintf(f.stderr, "Error: %v\n", err)
	} else {
		_, writeErr = fmt.Fprintf(f.stderr, "Error: %v\n", err)
	}

	return writeErr
}

func (f *formatter) printJSON(data any) error {
	enc := json.NewEncoder(f.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func plural(n int) string {
	if n == 1 {
		return "job"
	}
	return "jobs"
}

func pluralName(n int) string {
	if n == 1 {
		return "name"
	}
	return "names"
}

// ParseMode converts a string to OutputMode
func ParseMode(mode string) OutputMode {
	switch strings.ToLower(mode) {
	case "csv":
		return ModeCSV
	case "json":
		return ModeJSON
	case "yaml", "yml":
		return ModeYAML
	default:
		return ModeText
	}
}
