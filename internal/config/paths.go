package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/console/internal/messages"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "CONSOLE_CONFIG"

var userConfigDir = os.UserConfigDir

// DefaultPath returns the config file location and whether the user asked for it
// explicitly. flagPath wins over $CONSOLE_CONFIG, which wins over
// <user config dir>/console/config.toml.
func DefaultPath(flagPath string) (string, bool, error) {
	if strings.TrimSpace(flagPath) != "" {
		return flagPath, true, nil
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return env, true, nil
	}
	dir, err := userConfigDir()
	if err != nil {
		return "", false, fmt.Errorf(messages.ConfigResolveDirFmt, err)
	}
	return filepath.Join(dir, "console", "config.toml"), false, nil
}
