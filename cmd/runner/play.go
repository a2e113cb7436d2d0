package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the runner in the terminal.

Controls:
  Enter          - Start a run
  Space/Up/W     - Jump (left click works too)
  R              - Back to the start screen after game over
  Ctrl+S         - Save a text screenshot to ~/.runner/screenshots
  Q/Ctrl+C       - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("terminal session", "width", width, "height", height, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(params, cfg, logger); err != nil {
		logger.Error("terminal session failed", "err", err)
		return err
	}
	return nil
}
