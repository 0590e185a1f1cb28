package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// StubCommand installs a fake executable with the given name at the front of
// $PATH for the duration of the test, and returns the path of a log file
// that records the argv of every invocation.  `script` is extra sh appended
// after the logging line, for stubs that need to produce output or a
// nonzero exit status.
//
// Because it uses t.Setenv, tests calling StubCommand can't be .Parallel().
func StubCommand(t *testing.T, name, script string) (logFile string) {
	t.Helper()

	binDir := t.TempDir()
	logFile = filepath.Join(binDir, name+".log")

	// one line per invocation; args separated by the ASCII unit separator
	body := "#!/bin/sh\n" +
		"printf '%s\\037' \"$@\" >> '" + logFile + "'\n" +
		"echo >> '" + logFile + "'\n" +
		script + "\n"
	if err := os.WriteFile(filepath.Join(binDir, name), []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logFile
}

// StubCalls parses the log written by a StubCommand stub into one argv per
// invocation.
func StubCalls(t *testing.T, logFile string) [][]string {
	t.Helper()

	content, err := os.ReadFile(logFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}

	var calls [][]string
	for _, line := range strings.Split(string(content), "\n") {
		if line == "" {
			continue
		}
		args := strings.Split(line, "\037")
		calls = append(calls, args[:len(args)-1])
	}
	return calls
}
