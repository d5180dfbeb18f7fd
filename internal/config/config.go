// Package config loads console settings from TOML.
package config

// UI modes accepted by ui.mode.
const (
	UIModeAuto = "auto"
	UIModeTUI  = "tui"
	UIModeLine = "line"
)

// Config is the full console configuration.
type Config struct {
	Session SessionConfig `toml:"session"`
	Shell   ShellConfig   `toml:"shell"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// SessionConfig controls the prompt and the scrollback buffer.
type SessionConfig struct {
	User        string `toml:"user"`
	Host        string `toml:"host"`
	StartDir    string `toml:"start_dir"`
	HistorySize int    `toml:"history_size"`
}

// ShellConfig selects the shell used for non-built-in commands.
type ShellConfig struct {
	Path string   `toml:"path"`
	Args []string `toml:"args"`
}

// UIConfig selects the presentation layer.
type UIConfig struct {
	Mode  string `toml:"mode"`
	Color bool   `toml:"color"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration. User and StartDir are left empty and
// filled from the environment by ApplyDefaults.
func Default() Config {
	return Config{
		Session: SessionConfig{Host: "android", HistorySize: 50},
		Shell:   ShellConfig{Path: "sh", Args: []string{"-c"}},
		UI:      UIConfig{Mode: UIModeAuto, Color: true},
		Log:     LogConfig{Level: "warn"},
	}
}
