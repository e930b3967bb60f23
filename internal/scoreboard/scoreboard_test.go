package scoreboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestInsertSortsAndTruncates(t *testing.T) {
	var entries []Entry
	for i, score := range []int{10, -20, 50, 0, 30, 40} {
		entries = Insert(entries, Entry{Name: string(rune('a' + i)), Score: score})
		assert.LessOrEqual(t, len(entries), Capacity)
	}

	require.Len(t, entries, Capacity)
	scores := make([]int, len(entries))
	for i, e := range entries {
		scores[i] = e.Score
	}
	assert.Equal(t, []int{50, 40, 30, 10, 0}, scores)
}

func TestInsertKeepsEarlierEntryOnTie(t *testing.T) {
	entries := Insert(nil, Entry{Name: "first", Score: 20})
	entries = Insert(entries, Entry{Name: "second", Score: 20})

	assert.Equal(t, "first", entries[0].Name)
	assert.Equal(t, "second", entries[1].Name)
}

func TestInsertDoesNotMutateInput(t *testing.T) {
	entries := []Entry{{Name: "a", Score: 10}}
	_ = Insert(entries, Entry{Name: "b", Score: 90})
	assert.Equal(t, []Entry{{Name: "a", Score: 10}}, entries)
}

func TestBoardRecordPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	clock := quartz.NewMock(t)
	recordedAt := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	clock.Set(recordedAt)

	board := Open(NewFileStore(path), clock, quietLogger())
	assert.Empty(t, board.Entries())

	require.NoError(t, board.Record("Ana", 40, "s-1"))
	require.NoError(t, board.Record("Bea", 60, "s-2"))

	reopened := Open(NewFileStore(path), clock, quietLogger())
	assert.Equal(t, []Entry{
		{Name: "Bea", Score: 60, Session: "s-2", RecordedAt: recordedAt},
		{Name: "Ana", Score: 40, Session: "s-1", RecordedAt: recordedAt},
	}, reopened.Entries())
}

func TestOpenCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Ana", "score": `), 0o644))

	board := Open(NewFileStore(path), nil, quietLogger())
	assert.Empty(t, board.Entries())

	require.NoError(t, board.Record("Ana", 10, "s-1"))
	reopened := Open(NewFileStore(path), nil, quietLogger())
	require.Len(t, reopened.Entries(), 1)
}

func TestOpenWrongShapeIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Ana"}`), 0o644))

	assert.Empty(t, Open(NewFileStore(path), nil, nil).Entries())
}

func TestOpenNormalizesHandEditedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	raw := `[{"name":"a","score":1},{"name":"b","score":7},{"name":"c","score":3},
	         {"name":"d","score":9},{"name":"e","score":5},{"name":"f","score":8}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	entries := Open(NewFileStore(path), nil, quietLogger()).Entries()
	require.Len(t, entries, Capacity)
	assert.Equal(t, "d", entries[0].Name)
	assert.Equal(t, "c", entries[4].Name)
}

type failingStore struct{ MemoryStore }

func (failingStore) Save([]Entry) error { return errors.New("read-only file system") }

func TestRecordSaveFailure(t *testing.T) {
	board := Open(&failingStore{}, nil, quietLogger())

	err := board.Record("Ana", 20, "s-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
	assert.Len(t, board.Entries(), 1, "in-memory board still updated")
}

func TestQualifies(t *testing.T) {
	board := Open(&MemoryStore{}, nil, quietLogger())
	assert.True(t, board.Qualifies(-100))

	for _, score := range []int{10, 20, 30, 40, 50} {
		require.NoError(t, board.Record("x", score, ""))
	}
	assert.False(t, board.Qualifies(10))
	assert.True(t, board.Qualifies(11))
}

func TestBoardString(t *testing.T) {
	board := Open(&MemoryStore{}, nil, quietLogger())
	require.NoError(t, board.Record("Ana", 40, ""))
	assert.Equal(t, fmt.Sprintf("1. %-16s %5d\n", "Ana", 40), board.String())
}
