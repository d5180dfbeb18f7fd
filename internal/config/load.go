package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/console/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

var (
	readFile    = os.ReadFile
	currentUser = user.Current
	getwd       = os.Getwd
)

// fallbackUser is used when the OS cannot report a user name.
const fallbackUser = "user"

// Load reads the config at path. When required is false a missing file yields Default().
func Load(path string, required bool) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			return &cfg, nil
		}
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML data over Default() and validates the result.
// source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigEncodeFmt, err)
	}
	return data, nil
}

// ApplyDefaults fills the session user from the OS user and the start directory
// from the process working directory when they are unset.
func (c *Config) ApplyDefaults() error {
	if strings.TrimSpace(c.Session.User) == "" {
		c.Session.User = fallbackUser
		if u, err := currentUser(); err == nil && u.Username != "" {
			c.Session.User = u.Username
		}
	}
	if strings.TrimSpace(c.Session.StartDir) == "" {
		dir, err := getwd()
		if err != nil {
			return fmt.Errorf(messages.ConfigResolveStartDirFmt, err)
		}
		c.Session.StartDir = dir
	}
	return nil
}
