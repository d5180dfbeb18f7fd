package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt       = "missing config file %s: %w"
	ConfigInvalidConfigFmt     = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt  = "%s: unrecognized config keys: %v"
	ConfigResolveDirFmt        = "resolve user config dir: %w"
	ConfigEncodeFmt            = "encode config: %w"
	ConfigHistorySizeFmt       = "%s: session.history_size must be >= 1"
	ConfigHostRequiredFmt      = "%s: session.host is required"
	ConfigShellPathRequiredFmt = "%s: shell.path is required"
	ConfigUIModeInvalidFmt     = "%s: ui.mode must be one of auto, tui, line"
	ConfigLogLevelInvalidFmt   = "%s: log.level %q is invalid: %v"
	ConfigResolveStartDirFmt   = "resolve start directory: %w"
	ConfigOpenLogFileFmt       = "open log file %s: %w"
)
