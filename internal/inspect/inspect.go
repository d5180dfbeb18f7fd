// Package inspect checks path permissions and renders ls-style detail lines.
package inspect

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/conn-castle/console/internal/fsys"
	"github.com/conn-castle/console/internal/messages"
)

// ErrNotFound, ErrNotReadable, and ErrNotADirectory classify inspection failures.
var (
	ErrNotFound      = errors.New("path not found")
	ErrNotReadable   = errors.New("path not readable")
	ErrNotADirectory = errors.New("not a directory")
)

// sizeWidth is the minimum rendered width of the size column.
const sizeWidth = 13

// PathError records an inspection failure for a specific path.
type PathError struct {
	Path string
	Err  error
}

// Error renders the user-facing reason for the failure.
func (e *PathError) Error() string {
	switch e.Err {
	case ErrNotFound:
		return fmt.Sprintf(messages.PathNotFoundFmt, e.Path)
	case ErrNotReadable:
		return fmt.Sprintf(messages.PathNotReadableFmt, e.Path)
	case ErrNotADirectory:
		return fmt.Sprintf(messages.PathNotDirectoryFmt, e.Path)
	default:
		return e.Path + ": " + e.Err.Error()
	}
}

func (e *PathError) Unwrap() error { return e.Err }

// DetailLine summarizes one file for directory listings.
type DetailLine struct {
	Perm fsys.Access
	Size int64
	Name string
}

// String renders the permission triple, the size padded to a fixed width, and the
// base name, separated by tabs.
func (d DetailLine) String() string {
	return fmt.Sprintf("%s\t%*d\t%s", d.Perm, sizeWidth, d.Size, d.Name)
}

// Inspector answers permission and detail questions against a filesystem capability.
type Inspector struct {
	sys fsys.System
}

// New returns an Inspector backed by sys.
func New(sys fsys.System) *Inspector {
	return &Inspector{sys: sys}
}

// CheckReadable fails with ErrNotFound when path is absent and ErrNotReadable
// when it cannot be read.
func (i *Inspector) CheckReadable(path string) error {
	if _, err := i.sys.Stat(path); err != nil {
		return &PathError{Path: path, Err: ErrNotFound}
	}
	if !i.sys.Access(path, fsys.Read) {
		return &PathError{Path: path, Err: ErrNotReadable}
	}
	return nil
}

// CheckIsDirectory runs CheckReadable and then fails with ErrNotADirectory for non-directories.
func (i *Inspector) CheckIsDirectory(path string) error {
	if err := i.CheckReadable(path); err != nil {
		return err
	}
	info, err := i.sys.Stat(path)
	if err != nil {
		return &PathError{Path: path, Err: ErrNotFound}
	}
	if !info.IsDir() {
		return &PathError{Path: path, Err: ErrNotADirectory}
	}
	return nil
}

// Describe reports the permissions, size, and base name of path.
// A path that cannot be stat'ed reports size 0.
func (i *Inspector) Describe(path string) DetailLine {
	var perm fsys.Access
	for _, bit := range []fsys.Access{fsys.Read, fsys.Write, fsys.Execute} {
		if i.sys.Access(path, bit) {
			perm |= bit
		}
	}
	var size int64
	if info, err := i.sys.Stat(path); err == nil {
		size = info.Size()
	}
	return DetailLine{Perm: perm, Size: size, Name: filepath.Base(path)}
}

// List describes every immediate child of a directory, or the path itself when it
// is not a directory.
func (i *Inspector) List(path string) ([]DetailLine, error) {
	if err := i.CheckReadable(path); err != nil {
		return nil, err
	}
	info, err := i.sys.Stat(path)
	if err != nil {
		return nil, &PathError{Path: path, Err: ErrNotFound}
	}
	if !info.IsDir() {
		return []DetailLine{i.Describe(path)}, nil
	}
	names, err := i.sys.ReadDir(path)
	if err != nil {
		return nil, readDirError(path, err)
	}
	lines := make([]DetailLine, 0, len(names))
	for _, name := range names {
		lines = append(lines, i.Describe(filepath.Join(path, name)))
	}
	return lines, nil
}

// readDirError classifies a listing failure without repeating the path.
func readDirError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return &PathError{Path: path, Err: ErrNotReadable}
	case errors.Is(err, fs.ErrNotExist):
		return &PathError{Path: path, Err: ErrNotFound}
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &PathError{Path: path, Err: err}
}
