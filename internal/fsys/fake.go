package fsys

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/conn-castle/console/internal/messages"
)

// maxLinkDepth bounds symlink expansion, matching the Linux MAXSYMLINKS limit.
const maxLinkDepth = 40

// Node is one file or directory in a Fake filesystem.
type Node struct {
	Dir  bool
	Size int64
	Perm Access
}

// Fake is an in-memory System for tests.
//
// Paths are slash-separated and absolute. Links maps a link path to its
// target; relative targets are resolved against the link's directory.
// CanonicalizeFunc, when set, replaces Canonicalize for error injection.
type Fake struct {
	Nodes map[string]*Node
	Links map[string]string

	CanonicalizeFunc func(name string) (string, error)
}

// NewFake returns a Fake containing only a readable, writable, searchable root.
func NewFake() *Fake {
	return &Fake{
		Nodes: map[string]*Node{"/": {Dir: true, Size: 4096, Perm: Read | Write | Execute}},
		Links: map[string]string{},
	}
}

// AddDir adds a directory with the given "rwx" triple, creating missing parents as rwx directories.
func (f *Fake) AddDir(name string, perm string) *Fake {
	f.add(name, &Node{Dir: true, Size: 4096, Perm: mustParseAccess(perm)})
	return f
}

// AddFile adds a regular file with the given "rwx" triple and size.
func (f *Fake) AddFile(name string, perm string, size int64) *Fake {
	f.add(name, &Node{Size: size, Perm: mustParseAccess(perm)})
	return f
}

// AddLink adds a symlink at name pointing to target.
func (f *Fake) AddLink(name string, target string) *Fake {
	name = path.Clean(name)
	f.ensureParents(name)
	f.Links[name] = target
	return f
}

func (f *Fake) add(name string, node *Node) {
	name = path.Clean(name)
	f.ensureParents(name)
	f.Nodes[name] = node
}

func (f *Fake) ensureParents(name string) {
	for dir := path.Dir(name); ; dir = path.Dir(dir) {
		if _, ok := f.Nodes[dir]; !ok {
			f.Nodes[dir] = &Node{Dir: true, Size: 4096, Perm: Read | Write | Execute}
		}
		if dir == "/" {
			return
		}
	}
}

// Stat resolves name and returns info for the target node.
func (f *Fake) Stat(name string) (fs.FileInfo, error) {
	resolved, err := f.Canonicalize(name)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	node, ok := f.Nodes[resolved]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return fakeInfo{name: path.Base(resolved), node: node}, nil
}

// Access reports whether the resolved node carries every bit in mode.
func (f *Fake) Access(name string, mode Access) bool {
	resolved, err := f.Canonicalize(name)
	if err != nil {
		return false
	}
	node, ok := f.Nodes[resolved]
	if !ok {
		return false
	}
	return node.Perm&mode == mode
}

// ReadDir lists the sorted names of nodes and links directly under name.
func (f *Fake) ReadDir(name string) ([]string, error) {
	resolved, err := f.Canonicalize(name)
	if err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	node, ok := f.Nodes[resolved]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	if !node.Dir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	var names []string
	collect := func(child string) {
		if child != "/" && path.Dir(child) == resolved {
			names = append(names, path.Base(child))
		}
	}
	for child := range f.Nodes {
		collect(child)
	}
	for child := range f.Links {
		collect(child)
	}
	sort.Strings(names)
	return names, nil
}

// Canonicalize walks name one component at a time, expanding links.
func (f *Fake) Canonicalize(name string) (string, error) {
	if f.CanonicalizeFunc != nil {
		return f.CanonicalizeFunc(name)
	}
	return f.resolve(name, 0)
}

func (f *Fake) resolve(name string, depth int) (string, error) {
	if depth > maxLinkDepth {
		return "", fmt.Errorf(messages.FSFakeSymlinkLoopFmt, name)
	}
	parts := strings.Split(name, "/")
	current := "/"
	for i, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			current = path.Dir(current)
			continue
		}
		next := path.Join(current, part)
		if target, ok := f.Links[next]; ok {
			if !path.IsAbs(target) {
				target = current + "/" + target
			}
			return f.resolve(target+"/"+strings.Join(parts[i+1:], "/"), depth+1)
		}
		current = next
	}
	return current, nil
}

func mustParseAccess(triple string) Access {
	mode, err := ParseAccess(triple)
	if err != nil {
		panic(err)
	}
	return mode
}

type fakeInfo struct {
	name string
	node *Node
}

func (i fakeInfo) Name() string { return i.name }
func (i fakeInfo) Size() int64  { return i.node.Size }
func (i fakeInfo) Mode() fs.FileMode {
	if i.node.Dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.node.Dir }
func (i fakeInfo) Sys() any           { return nil }
