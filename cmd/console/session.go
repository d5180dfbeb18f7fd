package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/console/internal/config"
	"github.com/conn-castle/console/internal/dispatch"
	"github.com/conn-castle/console/internal/fsys"
	"github.com/conn-castle/console/internal/messages"
	"github.com/conn-castle/console/internal/observability"
	"github.com/conn-castle/console/internal/runner"
)

var (
	newSystem   = func() fsys.System { return fsys.RealSystem{} }
	newSpawner  = func() runner.Spawner { return runner.ExecSpawner{} }
	openLogFile = func(path string) (io.WriteCloser, error) {
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
)

// loadConfig reads the config file and applies flag overrides and environment defaults.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	path, explicit, err := config.DefaultPath(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagUser) {
		cfg.Session.User = opts.user
	}
	if flags.Changed(flagDir) {
		cfg.Session.StartDir = opts.dir
	}
	if flags.Changed(flagHistorySize) {
		cfg.Session.HistorySize = opts.historySize
	}
	if flags.Changed(flagMode) {
		cfg.UI.Mode = opts.mode
	}
	if opts.noColor {
		cfg.UI.Color = false
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(path); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrConfigValidation, err)
	}
	return cfg, nil
}

// newLogger builds the session logger. Without a log file, logs go to stderr
// unless the full-screen UI owns the terminal.
func newLogger(cfg *config.Config, stderr io.Writer, tui bool) (*slog.Logger, func(), error) {
	if cfg.Log.File != "" {
		file, err := openLogFile(cfg.Log.File)
		if err != nil {
			return nil, nil, fmt.Errorf(messages.ConfigOpenLogFileFmt, cfg.Log.File, err)
		}
		logger, err := observability.NewLogger(file, cfg.Log.Level)
		if err != nil {
			_ = file.Close()
			return nil, nil, err
		}
		return logger, func() { _ = file.Close() }, nil
	}
	if tui {
		return observability.Discard(), func() {}, nil
	}
	logger, err := observability.NewLogger(stderr, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() {}, nil
}

// newSession wires a dispatcher to the real filesystem and the configured shell.
func newSession(cfg *config.Config, logger *slog.Logger) (*dispatch.Dispatcher, error) {
	shell, err := runner.New(cfg.Shell.Path, cfg.Shell.Args, newSpawner(), logger)
	if err != nil {
		return nil, err
	}
	return dispatch.New(dispatch.Options{
		User:        cfg.Session.User,
		Host:        cfg.Session.Host,
		StartDir:    cfg.Session.StartDir,
		HistorySize: cfg.Session.HistorySize,
		System:      newSystem(),
		Runner:      shell,
		Logger:      logger,
	})
}
