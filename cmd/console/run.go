package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/console/internal/messages"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer closeLog()

			session, err := newSession(cfg, logger)
			if err != nil {
				return err
			}
			for _, line := range args {
				session.Execute(cmd.Context(), line)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), session.Content())
			return err
		},
	}
}
