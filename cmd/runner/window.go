package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the runner in a desktop window at its native 600x400 size.

Controls:
  Enter or click     - Start a run
  Space/Up or tap    - Jump
  R or click         - Back to the start screen after game over
  Q/Esc              - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if err := window.Run(params, cfg, logger); err != nil {
		logger.Error("window session failed", "err", err)
		return err
	}
	return nil
}
