package snake

import (
	"github.com/vovakirdan/joysnake/internal/config"
	"github.com/vovakirdan/joysnake/internal/core"
)

// Rules holds the tunables of a run. The zero value is not usable; build one
// with DefaultRules or RulesFromConfig.
type Rules struct {
	Grid               core.Grid
	BaseTickRate       float64 // Ticks per second at level 1
	LevelTickIncrement float64 // Added per level gained
	ScorePerLevel      int
	PowerChance        float64 // Probability a respawned food is a power food
	PowerDurationTicks int
	PowerTickBoost     float64 // Added to the tick rate while the power-up is active
}

// DefaultRules returns the rules of the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultSnakeConfig())
}

// RulesFromConfig extracts the game rules from a loaded configuration.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		Grid:               cfg.Board.Grid(),
		BaseTickRate:       cfg.Timing.BaseTickRate,
		LevelTickIncrement: cfg.Timing.LevelTickIncrement,
		ScorePerLevel:      cfg.Levels.ScorePerLevel,
		PowerChance:        cfg.PowerUp.Chance,
		PowerDurationTicks: cfg.PowerUp.DurationTicks,
		PowerTickBoost:     cfg.PowerUp.TickBoost,
	}
}

// LevelFor returns the level reached with the given score.
func (r Rules) LevelFor(score int) int {
	return score/r.ScorePerLevel + 1
}
