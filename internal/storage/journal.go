// Package storage persists the journal as a single JSON document and
// provides export, backup, and recovery operations on it.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/solheim/moodlog/internal/entry"
	"github.com/solheim/moodlog/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "moodlog"
	// JournalFile is the name of the JSON journal file
	JournalFile = "journal_log.json"
	// CorruptSuffix is appended to an unreadable journal file when it is
	// set aside during reinitialization
	CorruptSuffix = ".corrupt"
)

// Sentinel errors for storage failures. Wrapped errors carry the
// underlying cause; callers match with errors.Is.
var (
	// ErrWrite indicates the journal file could not be written.
	ErrWrite = errors.New("journal write failed")
	// ErrRead indicates the journal file exists but could not be read
	// or parsed. The file is never modified on this path.
	ErrRead = errors.New("journal read failed")
)

// Journal is the persisted document. Field names and formats are fixed
// for compatibility with existing journal files: entries carry
// minute-precision timestamps, the document's own created_at and
// last_updated are ISO-8601.
type Journal struct {
	Entries     []entry.Entry `json:"entries"`
	CreatedAt   DocTime       `json:"created_at"`
	LastUpdated DocTime       `json:"last_updated"`
}

// NewJournal returns an empty journal stamped with the current time.
func NewJournal() Journal {
	now := nowDoc()
	return Journal{
		Entries:     []entry.Entry{},
		CreatedAt:   now,
		LastUpdated: now,
	}
}

// GetStoragePath returns the path to the journal file.
// With an empty dataDir it uses os.UserConfigDir() for a cross-platform
// XDG-compliant location and creates the app directory if needed.
// A non-empty dataDir overrides the directory entirely.
func GetStoragePath(dataDir string) (string, error) {
	if dataDir != "" {
		if err := osutil.Provider.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return filepath.Join(dataDir, JournalFile), nil
	}

	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, JournalFile), nil
}

// Store owns the journal file and its in-memory copy. All mutating
// operations take the mutex, so concurrent callers are serialized.
// Reads serve from the in-memory copy loaded at Open.
type Store struct {
	mu      sync.Mutex
	path    string
	journal Journal
}

// Open loads the journal at path. If no file exists yet, a fresh empty
// journal is persisted immediately, fixing created_at at first use.
// An existing but unparsable file returns ErrRead and leaves the file
// untouched so the caller can decide how to recover.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s := &Store{path: path, journal: NewJournal()}
			if err := writeJournal(path, s.journal); err != nil {
				return nil, err
			}
			return s, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	j, err := parseJournal(path, data)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, journal: j}, nil
}

// readJournal reads and parses the journal document at path.
func readJournal(path string) (Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewJournal(), nil
		}
		return Journal{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return parseJournal(path, data)
}

func parseJournal(path string, data []byte) (Journal, error) {
	var j Journal
	if err := json.Unmarshal(data, &j); err != nil {
		return Journal{}, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	if j.Entries == nil {
		j.Entries = []entry.Entry{}
	}
	return j, nil
}

// Path returns the journal file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of entries in the journal.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.journal.Entries)
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entry.Entry, len(s.journal.Entries))
	copy(out, s.journal.Entries)
	return out
}

// Snapshot returns a copy of the full journal document, entries included.
func (s *Store) Snapshot() Journal {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := s.journal
	j.Entries = make([]entry.Entry, len(s.journal.Entries))
	copy(j.Entries, s.journal.Entries)
	return j
}

// Reload replaces the in-memory journal with whatever is on disk.
// Used after a backup restore or an external modification.
func (s *Store) Reload() error {
	j, err := readJournal(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal = j
	return nil
}

// Append adds e to the journal and rewrites the file. On write failure
// the in-memory journal is rolled back to its previous state, so memory
// and disk never disagree after the call returns.
func (s *Store) Append(e entry.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevEntries := s.journal.Entries
	prevUpdated := s.journal.LastUpdated

	s.journal.Entries = append(s.journal.Entries, e)
	s.journal.LastUpdated = nowDoc()

	if err := writeJournal(s.path, s.journal); err != nil {
		s.journal.Entries = prevEntries
		s.journal.LastUpdated = prevUpdated
		return err
	}
	return nil
}

// ClearAll removes every entry and rewrites the file. CreatedAt is
// preserved; LastUpdated is set to the clear time. Returns the number
// of entries removed. On write failure the journal is rolled back.
func (s *Store) ClearAll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevEntries := s.journal.Entries
	prevUpdated := s.journal.LastUpdated
	removed := len(prevEntries)

	s.journal.Entries = []entry.Entry{}
	s.journal.LastUpdated = nowDoc()

	if err := writeJournal(s.path, s.journal); err != nil {
		s.journal.Entries = prevEntries
		s.journal.LastUpdated = prevUpdated
		return 0, err
	}
	return removed, nil
}

// writeJournal atomically rewrites the journal file.
// Writes the full document to a temp file in the same directory, then
// renames it over the target, so readers never see a partial document.
func writeJournal(path string, j Journal) error {
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

// Reinitialize sets aside an unreadable journal file and opens a fresh
// empty store at the same path. The old file is renamed to a .corrupt
// sibling rather than deleted, so nothing is lost. Callers must obtain
// explicit user confirmation before invoking this.
func Reinitialize(path string) (*Store, error) {
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+CorruptSuffix); err != nil {
			return nil, fmt.Errorf("%w: setting aside corrupt journal: %v", ErrWrite, err)
		}
	}

	s := &Store{path: path, journal: NewJournal()}
	if err := writeJournal(path, s.journal); err != nil {
		return nil, err
	}
	return s, nil
}
