// runner is an endless side-scrolling runner for the terminal and the desktop.
//
// Usage:
//
//	runner play     - Play in the terminal
//	runner window   - Play in a desktop window
//	runner config   - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacle spawns
//	--config <path>       - Use a custom runner.yaml
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump over obstacles for as long as you can",
	Long: `Runner is an endless side-scroller. Obstacles slide in from the right;
jump over them to keep running. The score grows with every frame survived.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  runner play
  runner play --seed 42 --log-file /tmp/runner.log
  runner window --fps 120
  runner config > my-runner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// loadParams reads the runner configuration from the search path.
func loadParams() (runner.Params, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return runner.Params{}, err
	}
	return runner.ParamsFromConfig(cfg), nil
}

// openLogger builds the logger described by the global flags.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagFPS <= 0 {
		return nil, nil, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return logging.Open(flagLogFile, flagLogLevel)
}
