package scoreboard

import (
	"errors"
	"io/fs"
	"slices"

	"github.com/lox/twentyone/internal/fileutil"
)

// FileStore keeps the board as a JSON array in a single file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the file. A missing file is an empty board, not an error.
func (s *FileStore) Load() ([]Entry, error) {
	var entries []Entry
	if err := fileutil.ReadJSON(s.Path, &entries); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}

// Save rewrites the file atomically.
func (s *FileStore) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	return fileutil.WriteJSONAtomic(s.Path, entries, 0o644)
}

// MemoryStore keeps the board in memory only.
type MemoryStore struct {
	entries []Entry
}

// Load returns the saved entries.
func (s *MemoryStore) Load() ([]Entry, error) {
	return slices.Clone(s.entries), nil
}

// Save replaces the saved entries.
func (s *MemoryStore) Save(entries []Entry) error {
	s.entries = slices.Clone(entries)
	return nil
}
