// joysnake is a snake game for the terminal steered by a serial joystick,
// with the keyboard as fallback.
//
// Usage:
//
//	joysnake play            - Play (joystick if a port is configured)
//	joysnake ports           - List serial ports
//	joysnake highscore       - Show or reset the stored high score
//	joysnake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.joysnake/config.yaml)
//	--log-level <lvl>   - Override the configured log level
//	--seed <value>      - Set RNG seed for reproducible food placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/joysnake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "joysnake",
	Short: "Joysnake - Snake steered by a serial joystick",
	Long: `Joysnake is a terminal snake game. Steering comes from an analog joystick
streaming "x,y,button" lines over a serial port; the arrow keys or WASD take
over when no device is connected.

Available commands:
  play       - Start a game
  ports      - List serial ports
  highscore  - Show or reset the high score
  config     - Print the effective configuration

Examples:
  joysnake play
  joysnake play --port /dev/ttyACM0 --baud 9600
  joysnake play --keyboard --difficulty hard
  joysnake highscore --reset`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(portsCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file selected by --config.
func loadConfig() config.SnakeConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}
