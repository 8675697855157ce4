package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    640,
			Height:   400,
			CellSize: 20,
		},
		Timing: TimingConfig{
			BaseTickRate:       7,
			LevelTickIncrement: 0.5,
			PausedTickRate:     5,
			IdleTickRate:       10,
		},
		PowerUp: PowerUpConfig{
			Chance:        0.1,
			DurationTicks: 105, // ~15 seconds at 7 ticks per second
			TickBoost:     3,
		},
		Levels: LevelConfig{
			ScorePerLevel: 10,
		},
		Device: DeviceConfig{
			Port:          "",
			BaudRate:      9600,
			ReadTimeoutMS: 5,
			CenterX:       512,
			CenterY:       512,
			DeadZone:      150,
		},
		HighScore: HighScoreConfig{
			Backend: BackendFile,
			Path:    "~/.joysnake/highscore.txt",
		},
		Presentation: PresentationConfig{
			ShowGrid:  true,
			Bell:      true,
			Particles: 20,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.joysnake/joysnake.log",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
