package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conn-castle/console/internal/messages"
)

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var executeFunc = execute

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain runs the console CLI and exits with status 1 on failure.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(stderr, err)
	exit(1)
}

// execute runs the root command with args[1:], the program name being args[0].
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	root := newRootCmd()
	root.Version = buildVersion(Version, Commit, BuildDate)
	root.SetVersionTemplate(messages.VersionTemplate)
	root.SetArgs(commandArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func commandArgs(args []string) []string {
	if len(args) < 2 {
		return []string{}
	}
	return args[1:]
}

// buildVersion appends the commit and build date to version when the build set them.
func buildVersion(version string, commit string, date string) string {
	var meta []string
	if stamped(commit) {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, commit))
	}
	if stamped(date) {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, date))
	}
	if len(meta) == 0 {
		return version
	}
	return fmt.Sprintf(messages.VersionFullFmt, version, strings.Join(meta, ", "))
}

func stamped(value string) bool {
	return value != "" && value != "unknown"
}
