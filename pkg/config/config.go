package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Manager handles loading and accessing application configuration.
type Manager struct {
	koanfInstance *koanf.Koanf
	currentConfig Config
	mu            sync.RWMutex
}

// NewManager creates a new Manager with an empty koanf instance.
func NewManager() *Manager {
	return &Manager{
		koanfInstance: koanf.New("."),
	}
}

// DefaultConfig returns a new Config struct populated with hardcoded default values.
// These serve as the baseline configuration if no other sources override them.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "error",
			Format: "text",
		},
		Report: ReportConfig{
			CSV:           false,
			SkipMalformed: false,
			Sort:          "lexical",
		},
		Output: OutputConfig{
			Mode:    "text",
			Summary: false,
			Color:   true,
		},
	}
}

// Load loads configuration from defaults, the optional config file,
// MISSINGJOBS_* environment variables and command-line flags, in that order.
func (m *Manager) Load(flags *pflag.FlagSet, customConfigFilePath string) error {
	return m.LoadWithSources(DefaultSources(customConfigFilePath, flags))
}

// LoadWithSources loads configuration from sources sorted by priority,
// then unmarshals and validates the merged result.
func (m *Manager) LoadWithSources(sources []ConfigSource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ordered := append([]ConfigSource(nil), sources...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})

	for _, src := range ordered {
		if err := src.Load(m.koanfInstance); err != nil {
			return fmt.Errorf("config source %s: %w", src.Name(), err)
		}
	}

	var newCfg Config
	if err := m.koanfInstance.UnmarshalWithConf("", &newCfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("error unmarshaling final config: %w", err)
	}

	postProcessConfig(&newCfg)

	if err := newCfg.Validate(); err != nil {
		return err
	}
	m.currentConfig = newCfg

	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentConfig
}

// postProcessConfig handles adjustments needed after unmarshaling.
// --csv is shorthand for --output csv and wins over any other mode.
func postProcessConfig(cfg *Config) {
	if cfg.Report.CSV {
		cfg.Output.Mode = "csv"
	}
}

// DefaultConfigAsMap converts the DefaultConfig struct to a map for koanf's
// confmap.Provider so that every key exists before flags are applied.
func DefaultConfigAsMap() map[string]interface{} {
	def := DefaultConfig()
	return map[string]interface{}{
		"log.level":  def.Log.Level,
		"log.format": def.Log.Format,

		"report.csv":            def.Report.CSV,
		"report.skip_malformed": def.Report.SkipMalformed,
		"report.sort":           def.Report.Sort,

		"output.mode":    def.Output.Mode,
		"output.summary": def.Output.Summary,
		"output.color":   def.Output.Color,
	}
}

// flagKeys maps command-line flag names to koanf keys.
var flagKeys = map[string]string{
	"log-level":      "log.level",
	"log-format":     "log.format",
	"csv":            "report.csv",
	"skip-malformed": "report.skip_malformed",
	"sort":           "report.sort",
	"output":         "output.mode",
	"summary":        "output.summary",
}

// BindFlags defines command-line flags corresponding to configuration settings.
// These flags override config file and environment variable settings.
func BindFlags(flags *pflag.FlagSet) {
	defaults := DefaultConfig()

	flags.Bool("csv", defaults.Report.CSV, "Print the job ids comma separated, leading zeros stripped")
	flags.Bool("skip-malformed", defaults.Report.SkipMalformed, "Skip file names without a job id instead of failing")
	flags.String("sort", defaults.Report.Sort, "Job id ordering (lexical, numeric)")
	flags.StringP("output", "o", defaults.Output.Mode, "Output mode (text, csv, json, yaml)")
	flags.Bool("summary", defaults.Output.Summary, "Print a one-line summary to stderr")
	flags.Bool("no-color", false, "Disable colored output")

	flags.String("log-level", defaults.Log.Level, "Log level (debug, info, warn, error)")
	flags.String("log-format", defaults.Log.Format, "Log format (text, json)")
	flags.Bool("debug", false, "Enable debug logging")
}
