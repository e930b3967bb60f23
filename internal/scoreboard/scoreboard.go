// Package scoreboard keeps the best session scores between runs.
package scoreboard

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Capacity is the number of entries kept.
const Capacity = 5

// Entry is one finished session.
type Entry struct {
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	Session    string    `json:"session,omitempty"`
	RecordedAt time.Time `json:"recorded_at,omitzero"`
}

// Insert returns entries with e added, sorted by descending score and cut to
// Capacity. Among equal scores the older entry stays ahead.
func Insert(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)
	return normalize(out)
}

func normalize(entries []Entry) []Entry {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	return entries
}

// Store persists the board.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Board is the in-memory scoreboard backed by a Store.
type Board struct {
	store   Store
	clock   quartz.Clock
	logger  *log.Logger
	entries []Entry
}

// Open loads the board from store. A store that cannot be read leaves the
// board empty; the problem is logged and otherwise ignored.
func Open(store Store, clock quartz.Clock, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if clock == nil {
		clock = quartz.NewReal()
	}

	b := &Board{
		store:  store,
		clock:  clock,
		logger: logger.WithPrefix("scoreboard"),
	}

	entries, err := store.Load()
	if err != nil {
		b.logger.Warn("Ignoring unreadable scoreboard", "error", err)
		entries = nil
	}
	b.entries = normalize(slices.Clone(entries))
	b.logger.Debug("Loaded scoreboard", "entries", len(b.entries))
	return b
}

// Entries returns a copy of the current standings, best first.
func (b *Board) Entries() []Entry {
	return slices.Clone(b.entries)
}

// Qualifies reports whether score would earn a place on the board.
func (b *Board) Qualifies(score int) bool {
	if len(b.entries) < Capacity {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Record inserts a finished session and saves the board. The in-memory board
// is updated even when saving fails.
func (b *Board) Record(name string, score int, sessionID string) error {
	entry := Entry{
		Name:       name,
		Score:      score,
		Session:    sessionID,
		RecordedAt: b.clock.Now().UTC(),
	}
	b.entries = Insert(b.entries, entry)

	if err := b.store.Save(b.entries); err != nil {
		return fmt.Errorf("save scoreboard: %w", err)
	}
	b.logger.Info("Recorded score", "name", name, "score", score, "session", sessionID)
	return nil
}

// String renders the board as numbered lines.
func (b *Board) String() string {
	var sb strings.Builder
	for i, e := range b.entries {
		fmt.Fprintf(&sb, "%d. %-16s %5d\n", i+1, e.Name, e.Score)
	}
	return sb.String()
}
