package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/joysnake/internal/config"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "highscore.txt"))

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Load() = %d, expected 0", score)
	}
}

func TestFileStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "highscore.txt")
	store := NewFileStore(path)

	for _, score := range []int{5, 42, 7} {
		if err := store.Save(score); err != nil {
			t.Fatalf("Save(%d) failed: %v", score, err)
		}
		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if got != score {
			t.Errorf("Load() = %d, expected %d", got, score)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "7\n" {
		t.Errorf("file content = %q, expected %q", data, "7\n")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, expected only the high-score file", len(entries))
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		corrupt bool
	}{
		{"plain", "12", 12, false},
		{"trailing newline", "12\n", 12, false},
		{"empty", "", 0, false},
		{"text", "twelve", 0, true},
		{"negative", "-3", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			got, err := NewFileStore(path).Load()
			if errors.Is(err, ErrCorrupt) != tc.corrupt {
				t.Errorf("Load() error = %v, corrupt expected %v", err, tc.corrupt)
			}
			if got != tc.want {
				t.Errorf("Load() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db", "highscore.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}

	if got, err := store.Load(); err != nil || got != 0 {
		t.Errorf("Load() on empty db = %d, %v, expected 0", got, err)
	}

	for _, score := range []int{3, 30} {
		if err := store.Save(score); err != nil {
			t.Fatalf("Save(%d) failed: %v", score, err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	// Reopen to check the value survived.
	store, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() reopen failed: %v", err)
	}
	defer store.Close()

	if got, err := store.Load(); err != nil || got != 30 {
		t.Errorf("Load() after reopen = %d, %v, expected 30", got, err)
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(config.HighScoreConfig{Backend: config.BackendFile, Path: filepath.Join(dir, "hs.txt")})
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Errorf("Open(file) = %T, expected *FileStore", store)
	}
	store.Close()

	store, err = Open(config.HighScoreConfig{Backend: config.BackendSQLite, Path: filepath.Join(dir, "hs.db")})
	if err != nil {
		t.Fatalf("Open(sqlite) failed: %v", err)
	}
	if _, ok := store.(*SQLiteStore); !ok {
		t.Errorf("Open(sqlite) = %T, expected *SQLiteStore", store)
	}
	store.Close()

	if _, err := Open(config.HighScoreConfig{Backend: "redis", Path: filepath.Join(dir, "x")}); err == nil {
		t.Error("Open(redis) should fail")
	}
	if _, err := Open(config.HighScoreConfig{Backend: config.BackendFile}); err == nil {
		t.Error("Open() with empty path should fail")
	}
}

// memStore records saves for tracker tests.
type memStore struct {
	saved []int
	err   error
}

func (m *memStore) Load() (int, error) {
	if len(m.saved) == 0 {
		return 0, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *memStore) Save(score int) error {
	m.saved = append(m.saved, score)
	return m.err
}

func (m *memStore) Close() error { return nil }

func TestTrackerMonotonic(t *testing.T) {
	store := &memStore{}
	tr := NewTracker(store, 10)

	scores := []int{3, 10, 11, 4, 20, 19, 0}
	best := 10
	for _, s := range scores {
		isNew, err := tr.Offer(s)
		if err != nil {
			t.Fatalf("Offer(%d) failed: %v", s, err)
		}
		if isNew != (s > best) {
			t.Errorf("Offer(%d) = %v, expected %v", s, isNew, s > best)
		}
		best = max(best, s)
		if tr.Best() != best {
			t.Errorf("Best() = %d, expected %d", tr.Best(), best)
		}
	}

	if len(store.saved) != 2 || store.saved[0] != 11 || store.saved[1] != 20 {
		t.Errorf("saved = %v, expected [11 20]", store.saved)
	}
}

func TestTrackerSaveErrorKeepsBest(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	tr := NewTracker(store, 0)

	isNew, err := tr.Offer(5)
	if !isNew || err == nil {
		t.Errorf("Offer(5) = %v, %v, expected true and an error", isNew, err)
	}
	if tr.Best() != 5 {
		t.Errorf("Best() = %d, expected 5", tr.Best())
	}
}

func TestTrackerReset(t *testing.T) {
	store := &memStore{}
	tr := NewTracker(store, 8)

	if err := tr.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if tr.Best() != 0 {
		t.Errorf("Best() = %d, expected 0", tr.Best())
	}
	if got, _ := store.Load(); got != 0 {
		t.Errorf("stored = %d, expected 0", got)
	}
}
