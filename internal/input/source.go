// Package input normalizes the joystick device and the keyboard into a single
// steering source for the state machine.
package input

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/joysnake/internal/config"
	"github.com/vovakirdan/joysnake/internal/core"
)

// Source is polled by the state machine once per tick.
type Source interface {
	// PollDirection returns the candidate direction for this tick, or current
	// when the source has nothing new.
	PollDirection(current core.Direction) core.Direction

	// PollPauseToggle reports whether pause was toggled since the last poll.
	PollPauseToggle() bool

	// Name identifies the source in logs and the HUD.
	Name() string

	// Close releases the underlying device, if any.
	Close() error
}

// KeyPresser is implemented by sources that are fed key presses by the
// platform layer.
type KeyPresser interface {
	Press(key string) bool
}

// Open returns the device source when a port is configured and can be opened,
// and the keyboard otherwise. A failed device is logged, never fatal.
func Open(cfg config.DeviceConfig, logger *log.Logger) Source {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Port == "" {
		logger.Info("no device port configured, using keyboard")
		return NewKeyboard()
	}

	dev, err := OpenSerial(cfg, logger)
	if err != nil {
		logger.Warn("cannot connect to device, falling back to keyboard", "port", cfg.Port, "error", err)
		return NewKeyboard()
	}

	logger.Info("device connected", "port", cfg.Port, "baud", cfg.BaudRate)
	return dev
}
