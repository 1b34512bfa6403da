package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/particle-field/config"
)

var (
	// Global flags
	configPath string
	debugMode  bool
	seed       int64

	// Run flags
	interval  time.Duration
	colorMode string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "particle-field",
	Short: "Interactive particle network backdrop for the terminal",
	Long: `particle-field draws a drifting particle network that links nearby
points and scatters away from the mouse pointer.

Run without arguments to start the full-screen backdrop. Quit with Esc, q
or Ctrl-C.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("seed") {
			loaded.Seed = seed
		}
		if flags.Changed("interval") {
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}
			loaded.FrameInterval = interval
		}
		if flags.Changed("color") {
			loaded.ColorMode = colorMode
		}
		cfg = loaded

		logger, err = setupLogging(debugMode, cfg.LogFile)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBackdrop,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the full-screen backdrop (default)",
	Args:  cobra.NoArgs,
	RunE:  runBackdrop,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/particle-field/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "write debug log to the configured log file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for particle layout (0 = time based)")

	rootCmd.PersistentFlags().DurationVar(&interval, "interval", 0, "frame interval (default from config, 16ms)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color mode: auto, truecolor, 256")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// newRand seeds the particle generator; zero picks a time-based seed
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
