package activity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func when(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	first := Record{
		Timestamp: when("2025-03-01T18:00:00Z"),
		Session:   "march",
		Action:    ActionAppend,
		EntryID:   "e1",
		Details:   "Sage",
	}
	require.NoError(t, Append(dir, []Record{first}))

	second := Record{
		Timestamp: when("2025-03-01T19:00:00Z"),
		Session:   "march",
		Action:    ActionClear,
	}
	require.NoError(t, Append(dir, []Record{second}))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestAppend_HeaderWrittenOnce(t *testing.T) {
	dir := t.TempDir()

	rec := Record{Timestamp: when("2025-03-01T18:00:00Z"), Session: "s", Action: ActionRemove, EntryID: "e9"}
	require.NoError(t, Append(dir, []Record{rec}))
	require.NoError(t, Append(dir, []Record{rec}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "activity.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalRecord_BadTimestamp(t *testing.T) {
	_, err := UnmarshalRecord([]string{"not-a-time", "s", "append", "e1", ""})
	require.Error(t, err)
}
