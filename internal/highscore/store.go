// Package highscore persists the single high-score scalar.
package highscore

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/joysnake/internal/config"
)

// ErrCorrupt is returned by Load when the stored value is not a non-negative
// integer. Callers treat it as a missing high score.
var ErrCorrupt = errors.New("highscore: corrupt value")

// Store loads and saves the high score.
type Store interface {
	// Load returns the stored high score, or 0 when nothing is stored.
	Load() (int, error)
	// Save overwrites the stored high score.
	Save(score int) error
	Close() error
}

// Open returns the store selected by cfg. "~" in the path is expanded.
func Open(cfg config.HighScoreConfig) (Store, error) {
	path := config.ExpandHome(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("highscore: empty path")
	}

	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(path), nil
	case config.BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("highscore: unknown backend %q", cfg.Backend)
	}
}
