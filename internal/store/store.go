package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/roach88/taskline/internal/task"
)

// DefaultPath is the tasks file used when no override is configured.
const DefaultPath = "tasks.json"

// Store reads and writes the task document at a fixed path.
type Store struct {
	path string
}

// New returns a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document from disk.
//
// A missing file is not an error: Load returns an empty document so the
// first command against a fresh directory just works. Content that cannot
// be decoded is reported as a DataCorruptionError and is never silently
// overwritten with an empty document.
func (s *Store) Load() (*task.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return task.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc task.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DataCorruptionError{Path: s.path, Err: err}
	}

	// Absent keys take the same defaults as an empty document.
	if doc.Tasks == nil {
		doc.Tasks = []task.Task{}
	}
	if doc.NextID == 0 {
		doc.NextID = 1
	}
	return &doc, nil
}

// Save serializes the full document and overwrites the file.
func (s *Store) Save(doc *task.Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
