package dispatch

import (
	"context"
	"strings"

	"github.com/conn-castle/console/internal/messages"
	"github.com/conn-castle/console/internal/paths"
)

// builtin describes one internally handled command and its argument-count contract.
type builtin struct {
	minArgs int
	maxArgs int
	usage   string
	run     func(d *Dispatcher, ctx context.Context, args []string) string
}

// builtinTable returns the fixed, case-sensitive built-in command table.
func builtinTable() map[string]builtin {
	return map[string]builtin{
		"cd":     {minArgs: 1, maxArgs: 1, usage: messages.UsageCd, run: (*Dispatcher).changeDirectory},
		"ls":     {minArgs: 0, maxArgs: 1, usage: messages.UsageLs, run: (*Dispatcher).list},
		"pwd":    {usage: messages.UsagePwd, run: (*Dispatcher).printDirectory},
		"whoami": {usage: messages.UsageWhoami, run: (*Dispatcher).whoami},
		"echo":   {minArgs: 1, maxArgs: 1, usage: messages.UsageEcho, run: (*Dispatcher).echo},
		"clear":  {usage: messages.UsageClear, run: (*Dispatcher).clear},
	}
}

// changeDirectory moves the session to a readable directory, or leaves it untouched.
func (d *Dispatcher) changeDirectory(_ context.Context, args []string) string {
	target, err := paths.Resolve(d.sys, args[0], d.dir)
	if err != nil {
		return formatError(err)
	}
	if err := d.inspector.CheckIsDirectory(target); err != nil {
		return formatError(err)
	}
	d.dir = target
	return ""
}

// list renders one detail line per child of a directory, or one line for a file.
func (d *Dispatcher) list(_ context.Context, args []string) string {
	location := d.dir
	if len(args) == 1 {
		location = args[0]
	}
	target, err := paths.Resolve(d.sys, location, d.dir)
	if err != nil {
		return formatError(err)
	}
	details, err := d.inspector.List(target)
	if err != nil {
		return formatError(err)
	}
	lines := make([]string, 0, len(details))
	for _, detail := range details {
		lines = append(lines, detail.String())
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) printDirectory(context.Context, []string) string {
	return d.dir
}

func (d *Dispatcher) whoami(context.Context, []string) string {
	return d.user
}

// echo returns the contents of a single argument wrapped in matching quotes.
func (d *Dispatcher) echo(_ context.Context, args []string) string {
	arg := args[0]
	if len(arg) < 2 {
		return messages.UsageEcho
	}
	quote := arg[0]
	if (quote != '"' && quote != '\'') || arg[len(arg)-1] != quote {
		return messages.UsageEcho
	}
	return arg[1 : len(arg)-1]
}

// clear empties the history, including the prompt line that invoked it.
func (d *Dispatcher) clear(context.Context, []string) string {
	d.history.Clear()
	return ""
}
