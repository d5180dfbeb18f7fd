// Package dispatch implements the console's command execution engine.
//
// A Dispatcher owns one session: the user, the working directory, and the
// scrollback history. Execute routes each line to a built-in or to the external
// shell and always returns text; failures are rendered as "Error: ..." output
// instead of being returned as errors.
//
// A Dispatcher is not safe for concurrent use. Callers serialize Execute.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/conn-castle/console/internal/fsys"
	"github.com/conn-castle/console/internal/history"
	"github.com/conn-castle/console/internal/inspect"
	"github.com/conn-castle/console/internal/messages"
)

// DefaultHost is the host token shown in the prompt.
const DefaultHost = "android"

// Runner executes command lines that are not built-ins.
type Runner interface {
	Run(ctx context.Context, commandLine string, dir string) string
}

// Options configures a new Dispatcher.
type Options struct {
	User        string
	Host        string
	StartDir    string
	HistorySize int
	System      fsys.System
	Runner      Runner
	Logger      *slog.Logger
}

// Dispatcher parses command lines, executes them, and records the transcript.
type Dispatcher struct {
	user      string
	host      string
	dir       string
	history   *history.Buffer
	sys       fsys.System
	inspector *inspect.Inspector
	runner    Runner
	logger    *slog.Logger
	builtins  map[string]builtin
}

// New validates opts and returns a Dispatcher positioned at opts.StartDir.
// It fails when the start directory is not an existing readable directory.
func New(opts Options) (*Dispatcher, error) {
	if strings.TrimSpace(opts.User) == "" {
		return nil, errors.New(messages.DispatchUserRequired)
	}
	if opts.System == nil {
		return nil, errors.New(messages.DispatchSystemRequired)
	}
	if opts.Runner == nil {
		return nil, errors.New(messages.DispatchRunnerRequired)
	}
	buffer, err := history.New(opts.HistorySize)
	if err != nil {
		return nil, err
	}
	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	inspector := inspect.New(opts.System)
	start, err := opts.System.Canonicalize(opts.StartDir)
	if err != nil {
		return nil, fmt.Errorf(messages.DispatchInvalidStartFmt, opts.StartDir, err)
	}
	if err := inspector.CheckIsDirectory(start); err != nil {
		return nil, fmt.Errorf(messages.DispatchInvalidStartFmt, opts.StartDir, err)
	}

	return &Dispatcher{
		user:      opts.User,
		host:      host,
		dir:       start,
		history:   buffer,
		sys:       opts.System,
		inspector: inspector,
		runner:    opts.Runner,
		logger:    logger,
		builtins:  builtinTable(),
	}, nil
}

// Execute records the current prompt with commandLine, runs the command, and
// records its output when the output is not blank. It returns the raw output.
// A blank line records only the prompt and returns "".
func (d *Dispatcher) Execute(ctx context.Context, commandLine string) string {
	d.history.Append(d.Prompt() + commandLine)

	result := d.dispatch(ctx, commandLine)
	if strings.TrimSpace(result) != "" {
		d.history.Append(result)
	}
	return result
}

// dispatch selects a built-in by exact name or falls back to the external runner
// with the untouched command line.
func (d *Dispatcher) dispatch(ctx context.Context, commandLine string) string {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return ""
	}
	name, args := fields[0], fields[1:]

	b, ok := d.builtins[name]
	if !ok {
		d.logger.Debug("delegating to shell", "command", name, "dir", d.dir)
		return d.runner.Run(ctx, commandLine, d.dir)
	}
	if len(args) < b.minArgs || len(args) > b.maxArgs {
		d.logger.Debug("builtin usage", "command", name, "args", len(args))
		return b.usage
	}
	d.logger.Debug("builtin", "command", name, "args", len(args))
	return b.run(d, ctx, args)
}

// Content renders every history line followed by the current prompt.
func (d *Dispatcher) Content() string {
	var b strings.Builder
	for line := range d.history.All() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(d.Prompt())
	return b.String()
}

// Prompt renders "<user>@<host>:<dir>$ ".
func (d *Dispatcher) Prompt() string {
	return fmt.Sprintf(messages.PromptFmt, d.user, d.host, d.dir)
}

// SetUser replaces the session user. History and directory are unchanged.
func (d *Dispatcher) SetUser(user string) error {
	if strings.TrimSpace(user) == "" {
		return errors.New(messages.DispatchUserRequired)
	}
	d.user = user
	return nil
}

// User returns the session user.
func (d *Dispatcher) User() string { return d.user }

// Dir returns the canonical working directory.
func (d *Dispatcher) Dir() string { return d.dir }

// formatError renders err as command output.
func formatError(err error) string {
	return messages.ErrorPrefix + err.Error()
}
