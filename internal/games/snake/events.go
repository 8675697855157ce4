package snake

import "github.com/vovakirdan/joysnake/internal/core"

// Event is a semantic change emitted by Step. Presentation and persistence
// react to events instead of being called from the transition.
type Event interface {
	snakeEvent()
}

// StartedEvent is emitted when the run leaves the menu.
type StartedEvent struct {
	Direction core.Direction // Zero when started by an explicit start signal
}

func (StartedEvent) snakeEvent() {}

// FoodEatenEvent is emitted when the head reaches the food.
type FoodEatenEvent struct {
	Cell    core.Cell
	Variant FoodVariant
	Score   int // Score after eating
}

func (FoodEatenEvent) snakeEvent() {}

// PowerUpActivatedEvent is emitted when a power food is eaten.
type PowerUpActivatedEvent struct {
	Ticks int
}

func (PowerUpActivatedEvent) snakeEvent() {}

// PowerUpExpiredEvent is emitted when the power-up countdown reaches zero.
type PowerUpExpiredEvent struct{}

func (PowerUpExpiredEvent) snakeEvent() {}

// LevelUpEvent is emitted when the level increases.
type LevelUpEvent struct {
	Level        int
	NewObstacles int
}

func (LevelUpEvent) snakeEvent() {}

// HighScoreEvent is emitted whenever the score exceeds the high score.
type HighScoreEvent struct {
	Score int
}

func (HighScoreEvent) snakeEvent() {}

// GameOverEvent is emitted when a fatal collision ends the run.
type GameOverEvent struct {
	Reason GameOverReason
	Score  int
}

func (GameOverEvent) snakeEvent() {}

// PausedEvent is emitted on Running -> Paused.
type PausedEvent struct{}

func (PausedEvent) snakeEvent() {}

// ResumedEvent is emitted on Paused -> Running.
type ResumedEvent struct{}

func (ResumedEvent) snakeEvent() {}

// RestartedEvent is emitted when a finished run is restarted.
type RestartedEvent struct{}

func (RestartedEvent) snakeEvent() {}

// GameOverReason describes why a run ended.
type GameOverReason string

const (
	ReasonNone              GameOverReason = ""
	ReasonWallCollision     GameOverReason = "wall-collision"
	ReasonSelfCollision     GameOverReason = "self-collision"
	ReasonObstacleCollision GameOverReason = "obstacle-collision"
)

// Message returns the line shown on the game over screen.
func (r GameOverReason) Message() string {
	switch r {
	case ReasonWallCollision:
		return "You hit the edge."
	case ReasonSelfCollision:
		return "You bit yourself."
	case ReasonObstacleCollision:
		return "You hit a rock."
	default:
		return ""
	}
}
