package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/console/internal/config"
	"github.com/conn-castle/console/internal/messages"
	"github.com/conn-castle/console/internal/terminal"
	"github.com/conn-castle/console/internal/ui"
)

var (
	isInteractive = terminal.IsInteractive
	runTUIFunc    = func(cmd *cobra.Command, session ui.Session) error { return ui.RunTUI(cmd.Context(), session) }
	askUserFunc   = ui.AskUser
)

const (
	flagConfig      = "config"
	flagUser        = "user"
	flagDir         = "dir"
	flagHistorySize = "history-size"
	flagMode        = "mode"
	flagNoColor     = "no-color"
	flagDebug       = "debug"
	flagAskUser     = "ask-user"
)

// rootOptions holds the values of the CLI flags.
type rootOptions struct {
	configPath  string
	user        string
	dir         string
	historySize int
	mode        string
	noColor     bool
	debug       bool
	askUser     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, flagConfig, "", messages.FlagConfig)
	flags.StringVar(&opts.user, flagUser, "", messages.FlagUser)
	flags.StringVar(&opts.dir, flagDir, "", messages.FlagDir)
	flags.IntVar(&opts.historySize, flagHistorySize, 0, messages.FlagHistorySize)
	flags.BoolVar(&opts.noColor, flagNoColor, false, messages.FlagNoColor)
	flags.BoolVar(&opts.debug, flagDebug, false, messages.FlagDebug)
	cmd.Flags().StringVar(&opts.mode, flagMode, "", messages.FlagMode)
	cmd.Flags().BoolVar(&opts.askUser, flagAskUser, false, messages.FlagAskUser)

	cmd.AddCommand(newRunCmd(opts), newConfigCmd(opts))
	return cmd
}

// runInteractive starts a session in the UI mode selected by config and flags.
func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	tui, err := useTUI(cfg.UI.Mode)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr(), tui)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := newSession(cfg, logger)
	if err != nil {
		return err
	}
	if opts.askUser {
		user, err := askUserFunc(session.User())
		if err != nil {
			return err
		}
		if err := session.SetUser(user); err != nil {
			return err
		}
	}

	logger.Debug("session started", "user", session.User(), "dir", session.Dir(), "tui", tui)
	if tui {
		return runTUIFunc(cmd, session)
	}
	colorize := cfg.UI.Color && !color.NoColor
	return ui.RunLine(cmd.Context(), session, cmd.InOrStdin(), cmd.OutOrStdout(), colorize)
}

// useTUI resolves the configured UI mode against the attached terminal.
// Auto picks the full-screen UI only when stdin and stdout are terminals.
func useTUI(mode string) (bool, error) {
	switch mode {
	case config.UIModeLine:
		return false, nil
	case config.UIModeTUI:
		if !isInteractive() {
			return false, errors.New(messages.ModeRequiresTerminal)
		}
		return true, nil
	default:
		return isInteractive(), nil
	}
}
