package config

// Config is the root configuration structure for missingjobs.
// It aggregates all other specific configuration structs.
type Config struct {
	Log    LogConfig    `description:"Logging configuration" koanf:"log"`
	Report ReportConfig `description:"Job comparison configuration" koanf:"report"`
	Output OutputConfig `description:"Output configuration" koanf:"output"`
}

// LogConfig holds logging related configuration.
type LogConfig struct {
	Level  string `description:"Log level" koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `description:"Log format: text | json" koanf:"format" validate:"oneof=text json"`
}

// ReportConfig controls how job sets are built and compared.
type ReportConfig struct {
	CSV           bool   `description:"Print missing job ids comma separated" koanf:"csv"`
	SkipMalformed bool   `description:"Skip file names without a job id instead of failing" koanf:"skip_malformed"`
	Sort          string `description:"Job id ordering: lexical | numeric" koanf:"sort" validate:"oneof=lexical numeric"`
}

// OutputConfig controls rendering of the report.
type OutputConfig struct {
	Mode    string `description:"Output mode: text | csv | json | yaml" koanf:"mode" validate:"oneof=text csv json yaml"`
	Summary bool   `description:"Print a one-line summary to stderr" koanf:"summary"`
	Color   bool   `description:"Colorize summary and error lines" koanf:"color"`
}
