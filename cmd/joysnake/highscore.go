package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/joysnake/internal/highscore"
)

var flagReset bool

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show or reset the high score",
	Long: `Show the stored high score, or clear it with --reset.

Examples:
  joysnake highscore
  joysnake highscore --reset`,
	Args: cobra.NoArgs,
	Run:  runHighScore,
}

func init() {
	highscoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the high score to 0")
}

func runHighScore(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := highscore.Open(cfg.HighScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := highscore.NewTracker(store, 0).Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting high score: %v\n", err)
			os.Exit(1)
		}
		logger.Info("high score reset", "backend", cfg.HighScore.Backend, "path", cfg.HighScore.Path)
		fmt.Println("High score reset.")
		return
	}

	best, err := store.Load()
	if err != nil && !errors.Is(err, highscore.ErrCorrupt) {
		fmt.Fprintf(os.Stderr, "Error reading high score: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		logger.Warn("stored high score is corrupt", "error", err)
	}

	if best == 0 {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'joysnake play' to set the first one!")
		return
	}
	fmt.Printf("High Score: %d\n", best)
}
