package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/click-backend/internal/messages"
)

var validLogLevels = map[string]struct{}{
	LogLevelDebug: {},
	LogLevelInfo:  {},
	LogLevelWarn:  {},
	LogLevelError: {},
}

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	if strings.TrimSpace(c.Engine.Root) == "" {
		return fmt.Errorf(messages.ConfigEngineRootRequiredFmt, path)
	}
	if !filepath.IsAbs(c.Engine.Root) {
		return fmt.Errorf(messages.ConfigEngineRootRelativeFmt, path, c.Engine.Root)
	}
	if c.Engine.LockFile != "" && !filepath.IsAbs(c.Engine.LockFile) {
		return fmt.Errorf(messages.ConfigLockFileRelativeFmt, path, c.Engine.LockFile)
	}
	if strings.TrimSpace(c.Engine.ClickBinary) == "" {
		return fmt.Errorf(messages.ConfigClickBinaryRequiredFmt, path)
	}
	if _, ok := validLogLevels[c.Log.Level]; !ok {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, path, c.Log.Level)
	}
	return nil
}
