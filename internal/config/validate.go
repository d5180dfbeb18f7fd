package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/console/internal/messages"
	"github.com/conn-castle/console/internal/observability"
)

var validUIModes = map[string]struct{}{
	UIModeAuto: {},
	UIModeTUI:  {},
	UIModeLine: {},
}

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	if c.Session.HistorySize < 1 {
		return fmt.Errorf(messages.ConfigHistorySizeFmt, path)
	}
	if strings.TrimSpace(c.Session.Host) == "" {
		return fmt.Errorf(messages.ConfigHostRequiredFmt, path)
	}
	if strings.TrimSpace(c.Shell.Path) == "" {
		return fmt.Errorf(messages.ConfigShellPathRequiredFmt, path)
	}
	if _, ok := validUIModes[c.UI.Mode]; !ok {
		return fmt.Errorf(messages.ConfigUIModeInvalidFmt, path)
	}
	if _, err := observability.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, path, c.Log.Level, err)
	}
	return nil
}
