package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse   = "console"
	RootShort = "Interactive command-shell emulator"
	RootLong  = "Start an interactive console session with built-in commands, external shell delegation, and a bounded scrollback history."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagConfig      = "Path to config.toml (defaults to $CONSOLE_CONFIG or the user config directory)"
	FlagUser        = "Session user shown in the prompt"
	FlagDir         = "Starting working directory"
	FlagHistorySize = "Maximum number of history lines kept in the buffer"
	FlagMode        = "UI mode: auto, tui, or line"
	FlagNoColor     = "Disable colored output in line mode"
	FlagDebug       = "Enable debug logging"
	FlagAskUser     = "Prompt for the session user before starting"

	// RunUse is the run command usage.
	RunUse   = "run <command-line>..."
	RunShort = "Execute command lines in a fresh session and print the transcript"

	// ConfigUse is the config command name.
	ConfigUse   = "config"
	ConfigShort = "Print the effective configuration as TOML"

	ModeRequiresTerminal = "tui mode requires an interactive terminal"
	AskUserTitle         = "Session user"
	AskUserRequired      = "user is required"
	AskUserFailedFmt     = "ask user: %w"
	LineReadFailedFmt    = "read input: %w"
	TUIFailedFmt         = "run tui: %w"

	TUIHelpQuit = "quit"
	TUIBusy     = "running..."
)
