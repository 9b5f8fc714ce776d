// Package config loads the click backend configuration file.
package config

import "github.com/conn-castle/click-backend/internal/click"

// Log levels accepted by log.level.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config is the root of click.toml.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Log    LogConfig    `toml:"log"`
}

// EngineConfig configures the click install engine.
type EngineConfig struct {
	Root                  string `toml:"root"`
	ForceMissingFramework bool   `toml:"force_missing_framework"`
	ClickBinary           string `toml:"click_binary"`
	// LockFile defaults to a file inside Root when empty.
	LockFile string `toml:"lock_file"`
}

// LogConfig configures stderr logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Root:        click.DefaultRoot,
			ClickBinary: click.DefaultBinary,
		},
		Log: LogConfig{Level: LogLevelInfo},
	}
}

// EngineOptions converts the engine section into click engine options.
func (c *Config) EngineOptions() click.Options {
	return click.Options{
		Root:                  c.Engine.Root,
		Binary:                c.Engine.ClickBinary,
		ForceMissingFramework: c.Engine.ForceMissingFramework,
		LockPath:              c.Engine.LockFile,
	}
}
