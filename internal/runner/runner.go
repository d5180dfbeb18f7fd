// Package runner executes command lines through an external shell.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/conn-castle/console/internal/messages"
)

// Result is the outcome of a spawned process that ran to completion.
type Result struct {
	Output   []byte
	ExitCode int
}

// Spawner starts a process and waits for it to exit.
// A non-zero exit status is reported in Result, not as an error.
type Spawner interface {
	Spawn(ctx context.Context, argv []string, dir string) (Result, error)
}

// ExecSpawner implements Spawner with os/exec, merging stdout and stderr.
// The child's stdin is the null device.
type ExecSpawner struct{}

var execCommandContext = exec.CommandContext

// Spawn runs argv in dir and returns its combined output.
func (ExecSpawner) Spawn(ctx context.Context, argv []string, dir string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, errors.New(messages.RunnerEmptyArgv)
	}
	cmd := execCommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Output: out, ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{Output: out}, err
	}
	return Result{Output: out}, nil
}

// Shell runs command lines as "<path> <args...> <line>", e.g. sh -c.
type Shell struct {
	path    string
	args    []string
	spawner Spawner
	logger  *slog.Logger
}

// New returns a Shell. A nil logger discards log output.
func New(path string, args []string, spawner Spawner, logger *slog.Logger) (*Shell, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(messages.RunnerShellRequired)
	}
	if spawner == nil {
		return nil, errors.New(messages.RunnerSpawnerRequired)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Shell{path: path, args: append([]string(nil), args...), spawner: spawner, logger: logger}, nil
}

// Run executes commandLine in dir and blocks until the shell exits.
// It never fails: spawn errors are returned as "Error: <reason>" text.
// One trailing line terminator is stripped from the output.
func (s *Shell) Run(ctx context.Context, commandLine string, dir string) string {
	argv := make([]string, 0, len(s.args)+2)
	argv = append(argv, s.path)
	argv = append(argv, s.args...)
	argv = append(argv, commandLine)

	result, err := s.spawner.Spawn(ctx, argv, dir)
	if err != nil {
		s.logger.Warn("spawn failed", "shell", s.path, "dir", dir, "error", err)
		return messages.ErrorPrefix + fmt.Sprintf(messages.RunnerSpawnFailedFmt, s.path, err)
	}
	s.logger.Debug("external command finished", "dir", dir, "exit_code", result.ExitCode, "bytes", len(result.Output))
	return trimLineTerminator(string(result.Output))
}

func trimLineTerminator(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
