package snake

import (
	"slices"

	"github.com/vovakirdan/joysnake/internal/core"
)

// Snapshot is the render state handed to presentation each frame. Slices are
// copies and safe to keep.
type Snapshot struct {
	Tick       uint64
	Mode       Mode
	Snake      []core.Cell // Head first
	Direction  core.Direction
	Food       Food
	HasFood    bool
	Obstacles  []core.Cell
	Score      int
	Level      int
	HighScore  int
	PowerTicks int
	TickRate   float64
	Reason     GameOverReason // Set in ModeGameOver
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Mode:       g.mode,
		Snake:      slices.Clone(g.snake),
		Direction:  g.direction,
		Food:       g.food,
		HasFood:    g.hasFood,
		Obstacles:  slices.Clone(g.obstacles),
		Score:      g.score,
		Level:      g.level,
		HighScore:  g.highScore,
		PowerTicks: g.powerTicks,
		TickRate:   g.TickRate(),
		Reason:     g.reason,
	}
}

// Head returns the head cell.
func (s Snapshot) Head() core.Cell {
	return s.Snake[0]
}

// PowerActive reports whether the power-up was running.
func (s Snapshot) PowerActive() bool {
	return s.PowerTicks > 0
}

// Paused reports whether the game was paused.
func (s Snapshot) Paused() bool {
	return s.Mode == ModePaused
}

// GameOver reports whether the run had ended.
func (s Snapshot) GameOver() bool {
	return s.Mode == ModeGameOver
}
