package messages

// Console messages rendered into the session transcript.
const (
	// PromptFmt formats the prompt from user, host, and working directory.
	PromptFmt = "%s@%s:%s$ "

	// ErrorPrefix precedes every failure rendered as command output.
	ErrorPrefix = "Error: "

	UsageCd     = "Usage: cd <directory>"
	UsageLs     = "Usage: ls [<path>]"
	UsagePwd    = "Usage: pwd"
	UsageWhoami = "Usage: whoami"
	UsageEcho   = "Usage: echo \"<text>\""
	UsageClear  = "Usage: clear"

	PathNotFoundFmt     = "'%s' does not exist."
	PathNotReadableFmt  = "'%s' is not readable."
	PathNotDirectoryFmt = "'%s' is not a directory."
	PathInvalidFmt      = "%w: cannot resolve '%s': %v"
	PathExpandHomeFmt   = "%w: cannot expand '%s': %v"

	DispatchUserRequired     = "user is required"
	DispatchSystemRequired   = "filesystem is required"
	DispatchRunnerRequired   = "process runner is required"
	DispatchInvalidStartFmt  = "invalid start directory %s: %w"
	HistoryCapacityFmt       = "history capacity must be >= 1, got %d"
	RunnerShellRequired      = "shell is required"
	RunnerSpawnerRequired    = "spawner is required"
	RunnerEmptyArgv          = "empty argv"
	RunnerSpawnFailedFmt     = "%s: %v"
	FSAccessInvalidFmt       = "invalid access triple %q"
	FSFakeSymlinkLoopFmt     = "too many levels of symbolic links: %s"
	ObservabilityBadLevelFmt = "invalid log level %q: %w"
)
