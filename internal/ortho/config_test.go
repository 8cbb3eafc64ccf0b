package ortho

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTableConfig(t *testing.T) {
	path := writeTable(t, `
entries:
  - key: "#"
    rule: boundary
  - key: a
    literal: a
  - key: p
    rule: doubled
    arg: p
  - key: ʁ
    rule: final
    arg: re|r
`)

	cfg, err := LoadTableConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Entries, 4)
	assert.Equal(t, "doubled", cfg.Entries[2].Rule)
	assert.Equal(t, "re|r", cfg.Entries[3].Arg)
}

func TestLoadTableConfig_Errors(t *testing.T) {
	_, err := LoadTableConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadTableConfig(writeTable(t, "entries: []\n"))
	assert.ErrorContains(t, err, "no entries")

	_, err = LoadTableConfig(writeTable(t, "entries: {not a list}\n"))
	assert.Error(t, err)
}

func TestTableConfig_Build(t *testing.T) {
	cfg := &TableConfig{Entries: []EntryConfig{
		{Key: Boundary, Rule: "boundary"},
		{Key: "a", Literal: "a"},
		{Key: "p", Rule: "doubled", Arg: "p"},
	}}

	tbl, err := cfg.Build(newRules())
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	got, err := New(tbl).Transduce("papa")
	require.NoError(t, err)
	assert.Equal(t, "pappa", got)
}

func TestTableConfig_Build_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []EntryConfig
		wantErr string
	}{
		{
			"empty key",
			[]EntryConfig{{Literal: "a"}},
			"empty key",
		},
		{
			"unknown rule",
			[]EntryConfig{{Key: "a", Rule: "palatal"}},
			`unknown rule "palatal"`,
		},
		{
			"missing rule argument",
			[]EntryConfig{{Key: "n", Rule: "nasal", Arg: "an"}},
			"two spellings",
		},
		{
			"doubled without letter",
			[]EntryConfig{{Key: "p", Rule: "doubled"}},
			"letter argument",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &TableConfig{Entries: tc.entries}
			_, err := cfg.Build(newRules())
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestTableConfig_EmptyLiteralEmitsNothing(t *testing.T) {
	cfg := &TableConfig{Entries: []EntryConfig{
		{Key: Boundary},
		{Key: "a", Literal: "a"},
		{Key: "ʔ"},
	}}

	tbl, err := cfg.Build(newRules())
	require.NoError(t, err)

	got, err := New(tbl).Transduce("aʔa")
	require.NoError(t, err)
	assert.Equal(t, "aa", got)
}
