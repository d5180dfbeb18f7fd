package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/conn-castle/console/internal/messages"
	"github.com/conn-castle/console/internal/terminal"
)

var (
	runFormFunc   = func(form *huh.Form) error { return form.Run() }
	isInteractive = terminal.IsInteractive
)

// AskUser prompts for the session user, pre-filled with current.
func AskUser(current string) (string, error) {
	if !isInteractive() {
		return "", errors.New(messages.ModeRequiresTerminal)
	}
	value := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(messages.AskUserTitle).
				Value(&value).
				Validate(validateUser),
		),
	)
	if err := runFormFunc(form); err != nil {
		return "", fmt.Errorf(messages.AskUserFailedFmt, err)
	}
	return strings.TrimSpace(value), nil
}

func validateUser(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(messages.AskUserRequired)
	}
	return nil
}
