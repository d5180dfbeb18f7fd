package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/console/internal/messages"
	"github.com/conn-castle/console/internal/terminal"
)

// RunLine drives session from line-oriented input until EOF or ctx is done.
// Each prompt is written before reading the next line; outputs that start with
// "Error: " are highlighted when colorize is set. Input that does not come from a
// terminal is echoed after the prompt so out reads like the session transcript.
func RunLine(ctx context.Context, session Session, in io.Reader, out io.Writer, colorize bool) error {
	promptColor := color.New(color.FgGreen, color.Bold)
	errColor := color.New(color.FgRed)
	if colorize {
		promptColor.EnableColor()
		errColor.EnableColor()
	} else {
		promptColor.DisableColor()
		errColor.DisableColor()
	}

	echo := !isTerminalReader(in)
	scanner := bufio.NewScanner(in)
	for ctx.Err() == nil {
		_, _ = promptColor.Fprint(out, session.Prompt())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if echo {
			_, _ = fmt.Fprintln(out, line)
		}
		output := session.Execute(ctx, line)
		if strings.TrimSpace(output) == "" {
			continue
		}
		if strings.HasPrefix(output, messages.ErrorPrefix) {
			_, _ = errColor.Fprintln(out, output)
			continue
		}
		_, _ = fmt.Fprintln(out, output)
	}
	_, _ = fmt.Fprintln(out)
	if err := scanner.Err(); err != nil {
		return fmt.Errorf(messages.LineReadFailedFmt, err)
	}
	return ctx.Err()
}

func isTerminalReader(in io.Reader) bool {
	f, ok := in.(terminal.File)
	return ok && terminal.IsTerminal(f)
}
