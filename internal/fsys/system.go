// Package fsys abstracts the filesystem operations the console needs.
//
// Production code uses [RealSystem], which delegates to the os package and
// access(2). Tests use [Fake], an in-memory tree with symlinks and
// per-node permissions.
package fsys

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/console/internal/messages"
)

// Access is a permission bit set checked against the calling process.
type Access uint32

// Read, Write, and Execute are the permission bits understood by System.Access.
const (
	Read    Access = unix.R_OK
	Write   Access = unix.W_OK
	Execute Access = unix.X_OK
)

// System abstracts the filesystem capability used by path resolution and file inspection.
// Paths passed to every method are absolute.
type System interface {
	// Stat returns file info for name, following symlinks.
	Stat(name string) (fs.FileInfo, error)
	// Access reports whether the process holds every permission in mode for name.
	Access(name string, mode Access) bool
	// ReadDir returns the names of the immediate children of name, sorted.
	ReadDir(name string) ([]string, error)
	// Canonicalize resolves ".", "..", and symlinks to a unique absolute path.
	// Missing trailing components are kept lexically.
	Canonicalize(name string) (string, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

var (
	unixAccess   = unix.Access
	evalSymlinks = filepath.EvalSymlinks
	osReadDir    = os.ReadDir
)

// Stat delegates to os.Stat.
func (RealSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Access checks mode with access(2) using the real user and group IDs.
func (RealSystem) Access(name string, mode Access) bool {
	if mode&^(Read|Write|Execute) != 0 {
		return false
	}
	return unixAccess(name, uint32(mode)) == nil
}

// ReadDir lists child names in directory order as returned by os.ReadDir (sorted by name).
func (RealSystem) ReadDir(name string) ([]string, error) {
	entries, err := osReadDir(name)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Canonicalize resolves symlinks on the longest existing prefix of name and
// appends the missing remainder lexically.
func (RealSystem) Canonicalize(name string) (string, error) {
	if !filepath.IsAbs(name) {
		abs, err := filepath.Abs(name)
		if err != nil {
			return "", err
		}
		name = abs
	}
	existing := name
	var rest []string
	for {
		resolved, err := evalSymlinks(existing)
		if err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return filepath.Clean(name), nil
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}
}

// String renders mode as an "rwx" triple with "-" for absent bits.
func (mode Access) String() string {
	b := []byte("---")
	if mode&Read != 0 {
		b[0] = 'r'
	}
	if mode&Write != 0 {
		b[1] = 'w'
	}
	if mode&Execute != 0 {
		b[2] = 'x'
	}
	return string(b)
}

// ParseAccess parses an "rwx"-style triple as produced by Access.String.
func ParseAccess(triple string) (Access, error) {
	if len(triple) != 3 {
		return 0, fmt.Errorf(messages.FSAccessInvalidFmt, triple)
	}
	var mode Access
	for i, bit := range []Access{Read, Write, Execute} {
		switch triple[i] {
		case "rwx"[i]:
			mode |= bit
		case '-':
		default:
			return 0, fmt.Errorf(messages.FSAccessInvalidFmt, triple)
		}
	}
	return mode, nil
}
