package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/denikks/huntbook/internal/model"
)

// Sentinel errors for session storage.
var (
	// ErrCorrupt wraps any failure to parse an existing session file.
	ErrCorrupt = errors.New("corrupt session file")
	// ErrEmptyLabel rejects entries with no label.
	ErrEmptyLabel = errors.New("entry label is empty")
	// ErrNotFound is returned by Remove for an unknown entry ID.
	ErrNotFound = errors.New("entry not found")
)

const sessionExt = ".csv"

// Store owns one session file under a data directory. Every mutating call
// persists the whole session atomically before the in-memory state is
// updated, so memory and disk never diverge across a crash.
type Store struct {
	dir     string
	name    string
	session model.Session
}

// NewStore creates a Store for the named session. The data directory is an
// explicit dependency; the Store never consults process-wide state.
func NewStore(dir, name string) *Store {
	return &Store{dir: dir, name: name, session: model.Session{Name: name}}
}

// Path returns the session file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.name+sessionExt)
}

// Session returns a copy of the current in-memory session.
func (s *Store) Session() model.Session {
	out := model.Session{Name: s.name, Entries: make([]model.Entry, len(s.session.Entries))}
	copy(out.Entries, s.session.Entries)
	return out
}

// Load reads the session from disk. A missing file yields an empty session.
// Unparseable data returns an error wrapping ErrCorrupt; callers fall back
// to an empty session and surface a warning rather than aborting.
func (s *Store) Load() (model.Session, error) {
	f, err := os.Open(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		s.session = model.Session{Name: s.name}
		return s.Session(), nil
	}
	if err != nil {
		return model.Session{Name: s.name}, fmt.Errorf("opening session %s: %w", s.Path(), err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return model.Session{Name: s.name}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.Path(), err)
	}

	s.session = model.Session{Name: s.name, Entries: entries}
	return s.Session(), nil
}

// Append validates the entry, fills in its ID and timestamp when absent,
// and persists the grown session. On persist failure the in-memory session
// keeps its prior state and the previous file is left untouched.
func (s *Store) Append(e model.Entry) (model.Entry, error) {
	if strings.TrimSpace(e.Label) == "" {
		return model.Entry{}, ErrEmptyLabel
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC().Truncate(time.Second)
	}

	grown := append(s.Session().Entries, e)
	if err := s.persist(grown); err != nil {
		return model.Entry{}, err
	}
	s.session.Entries = grown
	return e, nil
}

// Remove deletes one entry by ID and persists the shrunk session.
func (s *Store) Remove(id string) error {
	if _, ok := s.session.Find(id); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	kept := make([]model.Entry, 0, len(s.session.Entries)-1)
	for _, e := range s.session.Entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if err := s.persist(kept); err != nil {
		return err
	}
	s.session.Entries = kept
	return nil
}

// Clear empties the session and persists the empty state. Idempotent.
func (s *Store) Clear() error {
	if err := s.persist(nil); err != nil {
		return err
	}
	s.session.Entries = nil
	return nil
}

// persist rewrites the session file atomically: the new content is written
// to a temp file in the same directory and renamed over the old file, so a
// failed write can never corrupt the last persisted state.
func (s *Store) persist(entries []model.Entry) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	return writeFileAtomic(s.Path(), func(w *os.File) error {
		return WriteEntries(w, entries)
	})
}

// Sessions lists session names (without extension) found in a data
// directory, sorted. A missing directory yields an empty list.
func Sessions(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading data dir: %w", err)
	}

	var names []string
	for _, de := range des {
		if de.IsDir() || !strings.HasSuffix(de.Name(), sessionExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(de.Name(), sessionExt))
	}
	sort.Strings(names)
	return names, nil
}
