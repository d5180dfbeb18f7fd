// Package paths turns user-supplied locations into canonical absolute paths.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/console/internal/fsys"
	"github.com/conn-castle/console/internal/messages"
)

// ErrInvalidPath reports that a location could not be canonicalized.
var ErrInvalidPath = errors.New("invalid path")

var expandHome = homedir.Expand

// Resolve returns the canonical form of location. Relative locations are joined to
// base first. "~" and "~/..." name the home directory unless base already holds an
// entry by that name. Existence is not checked otherwise.
func Resolve(sys fsys.System, location string, base string) (string, error) {
	target := location
	if !filepath.IsAbs(location) {
		target = base + string(filepath.Separator) + location
	}
	if isHomeRef(location) {
		if _, err := sys.Stat(target); err != nil {
			expanded, err := expandHome(location)
			if err != nil {
				return "", fmt.Errorf(messages.PathExpandHomeFmt, ErrInvalidPath, location, err)
			}
			target = expanded
		}
	}
	canonical, err := sys.Canonicalize(target)
	if err != nil {
		return "", fmt.Errorf(messages.PathInvalidFmt, ErrInvalidPath, location, err)
	}
	return canonical, nil
}

func isHomeRef(location string) bool {
	return location == "~" || strings.HasPrefix(location, "~/")
}
