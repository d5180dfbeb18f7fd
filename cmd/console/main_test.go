package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutePrintsVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute([]string{"console", "--version"}, &out, io.Discard))
	assert.Equal(t, Version+"\n", out.String())
}

func TestExecuteRejectsStrayArgs(t *testing.T) {
	err := execute([]string{"console", "pwd"}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "pwd"`)
}

func TestCommandArgs(t *testing.T) {
	assert.Equal(t, []string{}, commandArgs(nil))
	assert.Equal(t, []string{}, commandArgs([]string{"console"}))
	assert.Equal(t, []string{"run", "pwd"}, commandArgs([]string{"console", "run", "pwd"}))
}

func TestRunMainExitCodes(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })

	tests := []struct {
		name     string
		err      error
		wantExit int
		wantErr  string
	}{
		{"success", nil, -1, ""},
		{"failure", errors.New("start directory gone"), 1, "start directory gone\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executeFunc = func([]string, io.Writer, io.Writer) error { return tt.err }
			var stderr bytes.Buffer
			code := -1
			runMain([]string{"console"}, io.Discard, &stderr, func(c int) { code = c })
			assert.Equal(t, tt.wantExit, code)
			assert.Equal(t, tt.wantErr, stderr.String())
		})
	}
}

func TestMainRunsVersion(t *testing.T) {
	originalArgs := os.Args
	t.Cleanup(func() { os.Args = originalArgs })

	os.Args = []string{"console", "--version"}
	main()
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		commit string
		date   string
		want   string
	}{
		{"unknown", "unknown", "v1.2.3"},
		{"", "", "v1.2.3"},
		{"abc123", "unknown", "v1.2.3 (commit abc123)"},
		{"unknown", "2026-01-02", "v1.2.3 (built 2026-01-02)"},
		{"abc123", "2026-01-02", "v1.2.3 (commit abc123, built 2026-01-02)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, buildVersion("v1.2.3", tt.commit, tt.date))
	}
}
