package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFileFmt formats config read failures.
	ConfigReadFileFmt            = "read config %s: %w"
	ConfigInvalidConfigFmt       = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt    = "%s: unrecognized keys: %v"
	ConfigValidationGuidance     = "(see the [engine] and [log] sections of the shipped click.toml)"
	ConfigEngineRootRequiredFmt  = "%s: engine.root is required"
	ConfigEngineRootRelativeFmt  = "%s: engine.root must be an absolute path, got %q"
	ConfigLockFileRelativeFmt    = "%s: engine.lock_file must be an absolute path, got %q"
	ConfigClickBinaryRequiredFmt = "%s: engine.click_binary is required"
	ConfigLogLevelInvalidFmt     = "%s: log.level must be one of debug, info, warn, error (got %q)"
	ConfigExpandPathFmt          = "expand %s: %w"

	// LoggingInvalidLevelFmt formats an unknown log level.
	LoggingInvalidLevelFmt = "log level %q: %w"
)
