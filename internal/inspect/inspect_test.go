package inspect

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/console/internal/fsys"
)

func newFake() *fsys.Fake {
	return fsys.NewFake().
		AddDir("/root", "rwx").
		AddFile("/root/notes.txt", "rw-", 1234).
		AddFile("/root/run.sh", "r-x", 7).
		AddFile("/root/secret", "-w-", 3).
		AddDir("/root/sub", "rwx").
		AddDir("/root/closed", "--x")
}

func TestDetailLineString(t *testing.T) {
	line := DetailLine{Perm: fsys.Read | fsys.Execute, Size: 1234, Name: "file1"}
	assert.Equal(t, "r-x\t         1234\tfile1", line.String())

	line = DetailLine{Name: "empty"}
	assert.Equal(t, "---\t            0\tempty", line.String())

	huge := DetailLine{Perm: fsys.Read, Size: 12345678901234, Name: "big"}
	assert.Equal(t, "r--\t12345678901234\tbig", huge.String())
}

func TestCheckReadable(t *testing.T) {
	in := New(newFake())

	require.NoError(t, in.CheckReadable("/root/notes.txt"))

	err := in.CheckReadable("/root/missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "'/root/missing' does not exist.", err.Error())

	err = in.CheckReadable("/root/secret")
	require.ErrorIs(t, err, ErrNotReadable)
	assert.Equal(t, "'/root/secret' is not readable.", err.Error())
}

func TestCheckIsDirectory(t *testing.T) {
	in := New(newFake())

	require.NoError(t, in.CheckIsDirectory("/root/sub"))

	err := in.CheckIsDirectory("/root/notes.txt")
	require.ErrorIs(t, err, ErrNotADirectory)
	assert.Equal(t, "'/root/notes.txt' is not a directory.", err.Error())

	err = in.CheckIsDirectory("/root/closed")
	require.ErrorIs(t, err, ErrNotReadable)

	err = in.CheckIsDirectory("/nowhere")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDescribe(t *testing.T) {
	in := New(newFake())

	assert.Equal(t, DetailLine{Perm: fsys.Read | fsys.Write, Size: 1234, Name: "notes.txt"}, in.Describe("/root/notes.txt"))
	assert.Equal(t, DetailLine{Perm: fsys.Read | fsys.Execute, Size: 7, Name: "run.sh"}, in.Describe("/root/run.sh"))
	assert.Equal(t, DetailLine{Name: "gone"}, in.Describe("/root/gone"))
}

func TestListDirectory(t *testing.T) {
	in := New(newFake())

	lines, err := in.List("/root")
	require.NoError(t, err)
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, line.Name)
	}
	assert.Equal(t, []string{"closed", "notes.txt", "run.sh", "secret", "sub"}, names)
}

func TestListFileDescribesItself(t *testing.T) {
	in := New(newFake())

	lines, err := in.List("/root/notes.txt")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "notes.txt", lines[0].Name)
}

func TestListErrors(t *testing.T) {
	in := New(newFake())

	_, err := in.List("/root/missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = in.List("/root/closed")
	require.ErrorIs(t, err, ErrNotReadable)
}

// readDirFailure is a System whose ReadDir always fails with err.
type readDirFailure struct {
	*fsys.Fake
	err error
}

func (s readDirFailure) ReadDir(name string) ([]string, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: s.err}
}

func TestListReadDirFailures(t *testing.T) {
	tests := []struct {
		cause error
		want  string
	}{
		{fs.ErrPermission, "'/root/sub' is not readable."},
		{fs.ErrNotExist, "'/root/sub' does not exist."},
		{errors.New("input/output error"), "/root/sub: input/output error"},
	}
	for _, tt := range tests {
		in := New(readDirFailure{Fake: newFake(), err: tt.cause})
		_, err := in.List("/root/sub")
		require.Error(t, err)
		assert.Equal(t, tt.want, err.Error())
	}
}

func TestPathErrorWrapsOtherCauses(t *testing.T) {
	cause := errors.New("disk on fire")
	err := &PathError{Path: "/x", Err: cause}
	assert.Equal(t, "/x: disk on fire", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestInspectorWithRealSystem(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0o755))

	in := New(fsys.RealSystem{})
	require.NoError(t, in.CheckIsDirectory(root))

	lines, err := in.List(root)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "a.txt", lines[0].Name)
	assert.Equal(t, int64(5), lines[0].Size)
	assert.True(t, lines[0].Perm&fsys.Read != 0)
	assert.Equal(t, "dir", lines[1].Name)
}
