package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicon_AddAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lexicon.db")

	got, err := runCommand(t, nil, "lexicon", "add", "--db", db, "papa", "katʁ")
	require.NoError(t, err)
	assert.Contains(t, got, "pappa")
	assert.Contains(t, got, "quatre")

	list, err := runCommand(t, nil, "lexicon", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, list, "pa-pa")
	assert.Contains(t, list, "quatre")

	filtered, err := runCommand(t, nil, "lexicon", "list", "--db", db, "--ipa", "papa")
	require.NoError(t, err)
	assert.Contains(t, filtered, "pappa")
	assert.NotContains(t, filtered, "quatre")
}

func TestLexicon_List_JSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lexicon.db")

	_, err := runCommand(t, nil, "lexicon", "add", "--db", db, "ʁɔz")
	require.NoError(t, err)

	got, err := runCommand(t, nil, "--format", "json", "lexicon", "list", "--db", db)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(got), &resp))
	require.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var entries []EntryResult
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "ʁɔz", entries[0].IPA)
	assert.Equal(t, "rose", entries[0].Spelling)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEmpty(t, entries[0].CreatedAt)
}

func TestLexicon_Spellings(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lexicon.db")

	// Several renderings of the same randomized word accumulate.
	for i := 0; i < 8; i++ {
		_, err := runCommand(t, nil, "lexicon", "add", "--db", db, "pɛʁ")
		require.NoError(t, err)
	}

	got, err := runCommand(t, nil, "lexicon", "spellings", "--db", db, "pɛʁ")
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(got), "\n") {
		assert.Contains(t, []string{"paire", "père"}, line)
	}
}

func TestLexicon_Add_InputFailure(t *testing.T) {
	db := filepath.Join(t.TempDir(), "lexicon.db")

	_, err := runCommand(t, nil, "lexicon", "add", "--db", db, "xa")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// The rejected word must not be logged.
	list, err := runCommand(t, nil, "lexicon", "list", "--db", db)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(list))
}

func TestLexicon_RequiresDB(t *testing.T) {
	_, err := runCommand(t, nil, "lexicon", "list")
	require.Error(t, err)
}
