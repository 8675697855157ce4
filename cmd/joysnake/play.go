package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/joysnake/internal/config"
	"github.com/vovakirdan/joysnake/internal/core"
	"github.com/vovakirdan/joysnake/internal/games/snake"
	"github.com/vovakirdan/joysnake/internal/highscore"
	"github.com/vovakirdan/joysnake/internal/input"
	"github.com/vovakirdan/joysnake/internal/platform/tui"
)

var (
	flagPort       string
	flagBaud       int
	flagKeyboard   bool
	flagDifficulty string
	flagBackend    string
	flagScorePath  string
	flagWindowed   bool
	flagNoBell     bool
	flagPick       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake.

The joystick is read from the configured serial port. If no port is set, or
the port cannot be opened, the keyboard is used instead (arrows or WASD).

Controls:
  SPACE/Enter  Start
  P            Pause (or the joystick button)
  R            Restart after game over
  G            Toggle grid
  F            Toggle fullscreen
  Q            Quit

Difficulty presets:
  easy   - Slower start, more power food
  normal - Values from the config file
  hard   - Faster start, steeper speed-up, rare power food

Examples:
  joysnake play
  joysnake play --port /dev/ttyUSB0
  joysnake play --keyboard --seed 42
  joysnake play --pick
  joysnake play --highscore-backend sqlite --highscore-path ~/.joysnake/scores.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPort, "port", "", "Serial port of the joystick (overrides config)")
	playCmd.Flags().IntVar(&flagBaud, "baud", 0, "Baud rate (overrides config)")
	playCmd.Flags().BoolVar(&flagKeyboard, "keyboard", false, "Ignore the joystick and use the keyboard")
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBackend, "highscore-backend", "", "High score backend: file, sqlite")
	playCmd.Flags().StringVar(&flagScorePath, "highscore-path", "", "High score file or database path")
	playCmd.Flags().BoolVar(&flagWindowed, "windowed", false, "Start outside the alternate screen")
	playCmd.Flags().BoolVar(&flagNoBell, "no-bell", false, "Disable the terminal bell")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the difficulty from a menu before playing")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	// Get terminal size early for the difficulty picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	if flagPick && flagDifficulty == "" {
		preset, ok, pickErr := tui.RunDifficultyPicker(rt)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		// Player quit the picker
		if !ok {
			return
		}
		flagDifficulty = string(preset)
	}

	if err := applyPlayFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open high score storage
	store, err := highscore.Open(cfg.HighScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score store: %v\n", err)
		os.Exit(1)
	}
	tracker := highscore.NewTracker(store, loadHighScore(store, logger))

	// Select input source
	var src input.Source
	if flagKeyboard {
		logger.Info("keyboard requested, device disabled")
		src = input.NewKeyboard()
	} else {
		src = input.Open(cfg.Device, logger)
	}

	var rng *rand.Rand
	if rt.Seed != 0 {
		rng = rand.New(rand.NewSource(rt.Seed))
	}
	game := snake.New(snake.RulesFromConfig(cfg), nil, rng, tracker.Best())

	logger.Info("starting",
		"source", src.Name(),
		"board", fmt.Sprintf("%dx%d", cfg.Board.Grid().Cols(), cfg.Board.Grid().Rows()),
		"high_score", tracker.Best(),
		"backend", cfg.HighScore.Backend,
	)

	runErr := tui.Run(game, src, tracker, tui.Options{
		Timing:       cfg.Timing,
		Presentation: cfg.Presentation,
		Runtime:      rt,
		Logger:       logger,
		AltScreen:    !flagWindowed,
	})

	// Close store before potential exit
	if err := store.Close(); err != nil {
		logger.Warn("cannot close high score store", "error", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyPlayFlags applies the difficulty preset and command-line overrides.
func applyPlayFlags(cfg *config.SnakeConfig) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(cfg, preset)

	if flagPort != "" {
		cfg.Device.Port = flagPort
	}
	if flagBaud > 0 {
		cfg.Device.BaudRate = flagBaud
	}
	if flagBackend != "" {
		cfg.HighScore.Backend = flagBackend
	}
	if flagScorePath != "" {
		cfg.HighScore.Path = flagScorePath
	}
	if flagNoBell {
		cfg.Presentation.Bell = false
	}
	return cfg.Validate()
}

// loadHighScore reads the stored high score. An unreadable or corrupt value
// starts from 0 and is overwritten by the next new best.
func loadHighScore(store highscore.Store, logger *log.Logger) int {
	best, err := store.Load()
	switch {
	case err == nil:
		return best
	case errors.Is(err, highscore.ErrCorrupt):
		logger.Warn("stored high score is corrupt, starting from 0", "error", err)
	default:
		logger.Warn("cannot read high score, starting from 0", "error", err)
	}
	return 0
}
