package log

// Config controls the process-wide logger. It lives in this package so the
// config loader can embed it without an import cycle.
type Config struct {
	Level  string     `mapstructure:"level" yaml:"level"`
	Format string     `mapstructure:"format" yaml:"format"` // json | text
	File   FileOutput `mapstructure:"file" yaml:"file"`
}

// FileOutput configures the optional rotating file appender. Console output
// is always on.
type FileOutput struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	Path       string `mapstructure:"path" yaml:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// DefaultConfig is used when the config file omits the log section.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text"}
}
