package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv points every command at files under a per-test temp directory so
// tests never touch the working directory.
type testEnv struct {
	tasksFile   string
	journalFile string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	return testEnv{
		tasksFile:   filepath.Join(dir, "tasks.json"),
		journalFile: filepath.Join(dir, "tasks.journal.db"),
	}
}

func (e testEnv) args(extra ...string) []string {
	return append([]string{"--file", e.tasksFile, "--journal", e.journalFile}, extra...)
}

// executeCommand runs a fresh root command with the given args and returns
// captured stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// mustExecute runs a command that is expected to succeed.
func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := executeCommand(t, args...)
	require.NoError(t, err, "output was: %s", out)
	return out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
