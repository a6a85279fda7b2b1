// boing is a tweening engine with a terminal demo gallery.
//
// Usage:
//
//	boing list              - List available demos
//	boing play <demo>       - Run a demo
//	boing menu              - Pick demos interactively
//	boing sample <ease>     - Print an easing curve
//	boing runs [demo]       - Show recorded runs
//	boing serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--time-scale <x>      - Scale the tween clock (default: from config, 1)
//	--config <path>       - Use a specific boing.yaml
//	--db <path>           - Set database path (default: ~/.boing/runs.db)
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boing/internal/config"
	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/platform/tui"

	// Import demos to register them
	_ "github.com/vovakirdan/boing/internal/demos/curves"
	_ "github.com/vovakirdan/boing/internal/demos/orbit"
	_ "github.com/vovakirdan/boing/internal/demos/sequence"
)

var (
	// Global flags
	flagFPS       int
	flagTimeScale float64
	flagConfig    string
	flagDBPath    string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boing",
	Short: "Boing - tweening engine with a terminal demo gallery",
	Long: `Boing animates values over time with easing curves, loops, sequences
and a scheduler. The terminal gallery shows the engine at work.

Available commands:
  list     - Show all available demos
  play     - Run a specific demo directly
  menu     - Interactive demo picker
  sample   - Print an easing curve as a table or plot
  runs     - View recorded runs
  serve    - Start SSH server for remote viewing

Examples:
  boing list
  boing play curves
  boing play orbit --watch
  boing sample elastic_out --steps 20
  boing serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Float64Var(&flagTimeScale, "time-scale", 0, "Tween clock multiplier (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to boing.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.boing/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns a logger writing to stderr, or to ~/.boing/boing.log
// when a full-screen program owns the terminal.
func newLogger(fullScreen bool) *log.Logger {
	out := os.Stderr
	if fullScreen {
		if f, err := openLogFile(); err == nil {
			out = f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "boing",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".boing")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "boing.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// loadEngine reads the configuration and builds the engine.
// It returns the config path that was used ("embedded" or "builtin" when
// no file was found).
func loadEngine(logger *log.Logger) (*tui.Engine, string, error) {
	file, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("config loaded", "source", source)

	engine, err := tui.NewEngine(file, logger)
	if err != nil {
		return nil, "", fmt.Errorf("invalid config %s: %w", source, err)
	}
	return engine, source, nil
}

// runtimeConfig combines terminal size, config and flags.
func runtimeConfig(host config.HostConfig) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if host.TickRate > 0 {
		cfg.TickRate = host.TickRate
	}
	if host.TimeScale > 0 {
		cfg.TimeScale = host.TimeScale
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagTimeScale > 0 {
		cfg.TimeScale = flagTimeScale
	}
	return cfg
}
