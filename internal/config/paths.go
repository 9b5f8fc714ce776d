package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/click-backend/internal/messages"
)

// DefaultConfigPath is where the daemon's helper looks for its configuration.
const DefaultConfigPath = "/etc/PackageKit/click.toml"

// Environment overrides.
const (
	EnvConfigPath = "CLICK_BACKEND_CONFIG"
	EnvLogLevel   = "CLICK_BACKEND_LOG_LEVEL"
)

// ResolvePath returns the config path, honoring CLICK_BACKEND_CONFIG.
func ResolvePath(getenv func(string) string) string {
	if override := strings.TrimSpace(getenv(EnvConfigPath)); override != "" {
		return override
	}
	return DefaultConfigPath
}

// expandPaths resolves "~" in path-valued settings.
func (c *Config) expandPaths() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"engine.root", &c.Engine.Root},
		{"engine.click_binary", &c.Engine.ClickBinary},
		{"engine.lock_file", &c.Engine.LockFile},
	}
	for _, field := range fields {
		expanded, err := homedir.Expand(strings.TrimSpace(*field.value))
		if err != nil {
			return fmt.Errorf(messages.ConfigExpandPathFmt, field.name, err)
		}
		*field.value = expanded
	}
	return nil
}
