// Package logging builds the program's structured logger and turns runner
// lifecycle events into log lines.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// New creates a logger writing to w at the given level ("debug", "info", ...).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           lvl,
	}), nil
}

// Open creates a logger appending to the file at path, creating parent
// directories as needed. The returned closer releases the file.
// An empty path discards all output.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		logger, err := New(io.Discard, level)
		return logger, io.NopCloser(nil), err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Events returns a session listener that logs lifecycle events.
func Events(logger *log.Logger) func(runner.Event) {
	return func(e runner.Event) {
		switch e := e.(type) {
		case runner.StartedEvent:
			logger.Info("run started", "generation", e.Generation)
		case runner.JumpedEvent:
			logger.Debug("jump", "tick", e.Tick)
		case runner.GameOverEvent:
			logger.Info("game over", "score", e.FinalScore, "ticks", e.Ticks)
		case runner.ResetEvent:
			logger.Info("reset")
		}
	}
}
