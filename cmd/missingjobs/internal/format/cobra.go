// Copyright 2025 Missingjobs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jobtools/missingjobs/pkg/config"
)

// FromCommand builds a Formatter using cobra command output/error writers and the output config.
func FromCommand(cmd *cobra.Command, cfg config.OutputConfig) Formatter {
	return New(cmd.OutOrStdout(), cmd.ErrOrStderr(), ParseMode(cfg.Mode), cfg.Color)
}

// FromFlags builds a Formatter from the raw output flags. It serves errors
// raised before the configuration is loaded.
func FromFlags(cmd *cobra.Command) Formatter {
	mode := ModeText
	if flag := cmd.Flags().Lookup("output"); flag != nil {
		mode = ParseMode(flag.Value.String())
	}
	if flag := cmd.Flags().Lookup("csv"); flag != nil {
		if val, err := strconv.ParseBool(flag.Value.String()); err == nil && val {
			mode = ModeCSV
		}
	}

	color := true
	if flag := cmd.Flags().Lookup("no-color"); flag != nil {
		if val, err := strconv.ParseBool(flag.Value.String()); err == nil && val {
			color = false
		}
	}

	return New(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode, color)
}
