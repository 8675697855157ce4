package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/joysnake/internal/config"
)

// newLogger builds the logger for cfg writing to w. Every line carries the
// run id so several sessions can share one log file.
func newLogger(w io.Writer, cfg config.LogConfig) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "joysnake",
	})

	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		logger.SetLevel(level)
	}

	return logger.With("run", uuid.NewString()), nil
}

// openLogFile opens the log file in append mode. The terminal belongs to the
// game while it runs, so play logs never go to stderr.
func openLogFile(cfg config.LogConfig) (*os.File, error) {
	path := config.ExpandHome(cfg.File)
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
