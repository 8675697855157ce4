// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/joysnake/internal/core"
)

// SnakeConfig contains all configuration for the game and its I/O shells.
type SnakeConfig struct {
	Board        BoardConfig        `yaml:"board"`
	Timing       TimingConfig       `yaml:"timing"`
	PowerUp      PowerUpConfig      `yaml:"power_up"`
	Levels       LevelConfig        `yaml:"levels"`
	Device       DeviceConfig       `yaml:"device"`
	HighScore    HighScoreConfig    `yaml:"high_score"`
	Presentation PresentationConfig `yaml:"presentation"`
	Log          LogConfig          `yaml:"log"`
}

// BoardConfig defines the board in pixel space.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// Grid returns the board as a core.Grid.
func (b BoardConfig) Grid() core.Grid {
	return core.NewGrid(b.Width, b.Height, b.CellSize)
}

// TimingConfig defines tick rates in ticks per second.
type TimingConfig struct {
	BaseTickRate       float64 `yaml:"base_tick_rate"`
	LevelTickIncrement float64 `yaml:"level_tick_increment"` // Added per level gained
	PausedTickRate     float64 `yaml:"paused_tick_rate"`     // Refresh rate of the paused screen
	IdleTickRate       float64 `yaml:"idle_tick_rate"`       // Refresh rate of menu and game over screens
}

// PowerUpConfig defines power food spawning and its effect.
type PowerUpConfig struct {
	Chance        float64 `yaml:"chance"`         // Probability a respawned food is a power food
	DurationTicks int     `yaml:"duration_ticks"` // Countdown length in ticks
	TickBoost     float64 `yaml:"tick_boost"`     // Added to the tick rate while active
}

// LevelConfig defines level progression.
type LevelConfig struct {
	ScorePerLevel int `yaml:"score_per_level"`
}

// DeviceConfig defines the serial joystick link.
type DeviceConfig struct {
	Port          string `yaml:"port"` // Empty means keyboard only
	BaudRate      int    `yaml:"baud_rate"`
	ReadTimeoutMS int    `yaml:"read_timeout_ms"`
	CenterX       int    `yaml:"center_x"`
	CenterY       int    `yaml:"center_y"`
	DeadZone      int    `yaml:"dead_zone"`
}

// ReadTimeout returns the per-poll read timeout.
func (d DeviceConfig) ReadTimeout() time.Duration {
	return time.Duration(d.ReadTimeoutMS) * time.Millisecond
}

// HighScoreConfig selects the high-score backend.
type HighScoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

// PresentationConfig holds cosmetic toggles.
type PresentationConfig struct {
	ShowGrid  bool `yaml:"show_grid"`
	Bell      bool `yaml:"bell"`
	Particles int  `yaml:"particles"` // Particles per food eaten, 0 disables
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate reports the first configuration value the game cannot run with.
func (c SnakeConfig) Validate() error {
	if err := c.Board.Grid().Validate(); err != nil {
		return fmt.Errorf("config: board: %w", err)
	}
	if c.Board.Grid().CellCount() < 2 {
		return fmt.Errorf("config: board must hold at least 2 cells")
	}
	if c.Timing.BaseTickRate <= 0 {
		return fmt.Errorf("config: timing.base_tick_rate must be positive, got %v", c.Timing.BaseTickRate)
	}
	if c.Timing.LevelTickIncrement < 0 {
		return fmt.Errorf("config: timing.level_tick_increment must not be negative, got %v", c.Timing.LevelTickIncrement)
	}
	if c.Timing.PausedTickRate <= 0 || c.Timing.IdleTickRate <= 0 {
		return fmt.Errorf("config: timing.paused_tick_rate and timing.idle_tick_rate must be positive")
	}
	if c.PowerUp.Chance < 0 || c.PowerUp.Chance > 1 {
		return fmt.Errorf("config: power_up.chance must be within [0, 1], got %v", c.PowerUp.Chance)
	}
	if c.PowerUp.DurationTicks <= 0 {
		return fmt.Errorf("config: power_up.duration_ticks must be positive, got %d", c.PowerUp.DurationTicks)
	}
	if c.Levels.ScorePerLevel <= 0 {
		return fmt.Errorf("config: levels.score_per_level must be positive, got %d", c.Levels.ScorePerLevel)
	}
	if c.Device.DeadZone < 0 {
		return fmt.Errorf("config: device.dead_zone must not be negative, got %d", c.Device.DeadZone)
	}
	switch c.HighScore.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown high_score.backend %q", c.HighScore.Backend)
	}
	return nil
}

// High-score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)
