package highscore

// Tracker keeps the best score of the process and persists every new best.
// The best score never decreases except through Reset.
type Tracker struct {
	store Store
	best  int
}

// NewTracker starts tracking from initial, usually the value loaded from store.
func NewTracker(store Store, initial int) *Tracker {
	return &Tracker{store: store, best: max(0, initial)}
}

// Best returns the best score seen.
func (t *Tracker) Best() int {
	return t.best
}

// Offer records score. It reports whether score was a new best and returns the
// store error if persisting it failed; the in-memory best is updated either way.
func (t *Tracker) Offer(score int) (bool, error) {
	if score <= t.best {
		return false, nil
	}
	t.best = score
	return true, t.store.Save(score)
}

// Reset clears the stored high score.
func (t *Tracker) Reset() error {
	t.best = 0
	return t.store.Save(0)
}
