package commands

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jobtools/missingjobs/cmd/missingjobs/internal/format"
	"github.com/jobtools/missingjobs/pkg/config"
	"github.com/jobtools/missingjobs/pkg/jobset"
	"github.com/jobtools/missingjobs/pkg/logging"
	"github.com/jobtools/missingjobs/pkg/paths"
	"github.com/jobtools/missingjobs/pkg/version"
)

const cliExecutable = "missingjobs"

// reportedError marks an error the formatter has already printed.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// NewCommand constructs the missingjobs command reading the real filesystem.
func NewCommand() *cobra.Command {
	return newCommand(jobset.GlobLister{})
}

func newCommand(lister jobset.Lister) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   cliExecutable + " [flags] <inbase> <outbase>",
		Short: "List jobs whose input files have no matching output file",
		Long: `missingjobs compares the files starting with <inbase> against the files
starting with <outbase>. Job files are named <base>.<job_id>[.<suffix>], and every
job id present for <inbase> but absent for <outbase> is reported as <inbase>.<job_id>,
or as a comma separated id list with --csv.`,
		Example: `  missingjobs data/run data/result
  missingjobs --csv run result
  missingjobs --sort numeric -o json run result`,
		Args:    cobra.ExactArgs(2),
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				configFile = paths.DefaultConfigFile()
			}

			mgr := config.NewManager()
			if err := mgr.Load(cmd.Flags(), configFile); err != nil {
				return err
			}
			cfg := mgr.Get()
			logging.ConfigureGlobalLogging(cfg.Log.Level, cfg.Log.Format)

			formatter := format.FromCommand(cmd, cfg.Output)
			if err := runReport(formatter, lister, cfg, args[0], args[1]); err != nil {
				_ = formatter.PrintError(err)
				return &reportedError{err: err}
			}
			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file path (YAML, default $XDG_CONFIG_HOME/missingjobs/config.yaml)")
	config.BindFlags(cmd.Flags())

	return cmd
}

func runReport(formatter format.Formatter, lister jobset.Lister, cfg config.Config, inbase, outbase string) error {
	order, err := jobset.ParseOrder(cfg.Report.Sort)
	if err != nil {
		return err
	}

	reporter := &jobset.Reporter{
		Lister:        lister,
		Order:         order,
		SkipMalformed: cfg.Report.SkipMalformed,
	}

	log.Debug().
		Str("inbase", inbase).
		Str("outbase", outbase).
		Str("sort", string(order)).
		Str("mode", cfg.Output.Mode).
		Msg("comparing job files")

	report, err := reporter.Run(inbase, outbase)
	if err != nil {
		return err
	}

	if err := formatter.PrintReport(report); err != nil {
		return err
	}
	if err := formatter.PrintWarnings(report); err != nil {
		return err
	}
	if cfg.Output.Summary {
		return formatter.PrintSummary(report)
	}
	return nil
}

// Execute runs the command with the process arguments and returns the exit code.
func Execute() int {
	return execute(NewCommand())
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			_ = format.FromFlags(cmd).PrintError(err)
		}
		return 1
	}
	return 0
}
