package fsys

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeCanonicalize(t *testing.T) {
	f := NewFake().
		AddDir("/root/sub", "rwx").
		AddLink("/root/abs", "/root/sub").
		AddLink("/root/rel", "sub").
		AddLink("/root/chain", "abs")

	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/root/./sub/", "/root/sub"},
		{"/root/sub/..", "/root"},
		{"/..", "/"},
		{"/root/abs", "/root/sub"},
		{"/root/rel", "/root/sub"},
		{"/root/chain/x", "/root/sub/x"},
		{"/root/abs/..", "/root"},
		{"/root/missing/../sub", "/root/sub"},
	}
	for _, tt := range tests {
		got, err := f.Canonicalize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFakeCanonicalizeLoop(t *testing.T) {
	f := NewFake().AddLink("/a", "/b").AddLink("/b", "/a")
	_, err := f.Canonicalize("/a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbolic links")
}

func TestFakeCanonicalizeFunc(t *testing.T) {
	wantErr := errors.New("boom")
	f := NewFake()
	f.CanonicalizeFunc = func(string) (string, error) { return "", wantErr }
	_, err := f.Canonicalize("/")
	require.ErrorIs(t, err, wantErr)
}

func TestFakeStatAndAccess(t *testing.T) {
	f := NewFake().AddFile("/data/report.txt", "r--", 1234).AddDir("/locked", "-wx")

	info, err := f.Stat("/data/report.txt")
	require.NoError(t, err)
	assert.Equal(t, "report.txt", info.Name())
	assert.Equal(t, int64(1234), info.Size())
	assert.False(t, info.IsDir())

	info, err = f.Stat("/data")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = f.Stat("/nope")
	require.ErrorIs(t, err, fs.ErrNotExist)

	assert.True(t, f.Access("/data/report.txt", Read))
	assert.False(t, f.Access("/data/report.txt", Write))
	assert.False(t, f.Access("/locked", Read))
	assert.True(t, f.Access("/locked", Write|Execute))
	assert.False(t, f.Access("/nope", Read))
}

func TestFakeReadDir(t *testing.T) {
	f := NewFake().
		AddFile("/d/b.txt", "rw-", 1).
		AddDir("/d/a", "rwx").
		AddFile("/d/a/nested", "rw-", 1).
		AddLink("/d/c", "/d/a")

	names, err := f.ReadDir("/d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b.txt", "c"}, names)

	names, err = f.ReadDir("/d/c")
	require.NoError(t, err)
	assert.Equal(t, []string{"nested"}, names)

	_, err = f.ReadDir("/d/b.txt")
	require.ErrorIs(t, err, fs.ErrInvalid)
	_, err = f.ReadDir("/missing")
	require.ErrorIs(t, err, fs.ErrNotExist)
}
