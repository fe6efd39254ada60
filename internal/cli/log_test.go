package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/taskline/internal/journal"
)

func TestLogEmptyJournal(t *testing.T) {
	env := newTestEnv(t)

	out := mustExecute(t, env.args("log")...)
	assert.Equal(t, "No history recorded.\n", out)
}

func TestLogShowsMutationsInOrder(t *testing.T) {
	env := newTestEnv(t)
	mustExecute(t, env.args("add", "--description", "write spec", "--estimate", "3")...)
	mustExecute(t, env.args("edit", "--id", "1", "--estimate", "5")...)

	out := mustExecute(t, env.args("log")...)
	assert.Contains(t, out, "History:")

	addIdx := strings.Index(out, "add task 1")
	editIdx := strings.Index(out, "edit task 1")
	require.GreaterOrEqual(t, addIdx, 0)
	require.GreaterOrEqual(t, editIdx, 0)
	assert.Less(t, addIdx, editIdx, "add must be listed before edit")
}

func TestLogJSONOutput(t *testing.T) {
	env := newTestEnv(t)
	mustExecute(t, env.args("add", "--description", "write spec")...)

	out := mustExecute(t, env.args("log", "--format", "json")...)

	var resp struct {
		Status string          `json:"status"`
		Data   []journal.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, journal.OpAdd, resp.Data[0].Op)
	assert.Equal(t, 1, resp.Data[0].TaskID)
}

func TestLogReadOnlyCommandsAreNotJournaled(t *testing.T) {
	env := newTestEnv(t)
	mustExecute(t, env.args("add", "--description", "write spec")...)
	mustExecute(t, env.args("list")...)
	mustExecute(t, env.args("view", "--id", "1")...)

	out := mustExecute(t, env.args("log", "--format", "json")...)

	var resp struct {
		Data []journal.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Len(t, resp.Data, 1, "only the add may be journaled")
}
