package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/taskline/internal/task"
)

// chdirWithConfig moves the test into a temp working directory holding a
// .taskline.yaml, the way a user's project directory would look.
func chdirWithConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(oldWD)) })
	require.NoError(t, os.WriteFile(".taskline.yaml", []byte(content), 0o644))
	return dir
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	dir := chdirWithConfig(t,
		"tasks_file: custom.json\njournal_file: custom.journal.db\nformat: json\n")

	// No flags: everything comes from the config file.
	out := mustExecute(t, "add", "--description", "write spec", "--estimate", "3")

	// format: json from the config is in effect.
	var resp struct {
		Status string    `json:"status"`
		Data   task.Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, task.Task{ID: 1, Description: "write spec", Estimate: 3}, resp.Data)

	// tasks_file and journal_file from the config are in effect.
	_, err := os.Stat(filepath.Join(dir, "custom.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "custom.journal.db"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "tasks.json"))
	assert.True(t, os.IsNotExist(err), "default tasks file must not be written")
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := chdirWithConfig(t, "tasks_file: config.json\nformat: json\n")

	out := mustExecute(t, "add", "--description", "write spec",
		"--file", "flag.json", "--format", "text")

	// --format text beats the config's json.
	assert.Equal(t, "Task 'write spec' added with ID 1 and estimate 0 hours.\n", out)

	// --file beats the config's tasks_file.
	_, err := os.Stat(filepath.Join(dir, "flag.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "config.json"))
	assert.True(t, os.IsNotExist(err), "config tasks file must not be written")
}

func TestConfigJournalOverriddenByFlag(t *testing.T) {
	dir := chdirWithConfig(t, "journal_file: config.journal.db\n")

	mustExecute(t, "add", "--description", "write spec", "--journal", "flag.journal.db")

	_, err := os.Stat(filepath.Join(dir, "flag.journal.db"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "config.journal.db"))
	assert.True(t, os.IsNotExist(err))
}

func TestMalformedConfigIsCommandError(t *testing.T) {
	chdirWithConfig(t, "task_file: typo.json\n")

	_, err := executeCommand(t, "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeConfig)
}
