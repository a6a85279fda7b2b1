package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boing/internal/config"
	"github.com/vovakirdan/boing/internal/platform/tui"
	"github.com/vovakirdan/boing/internal/registry"
	"github.com/vovakirdan/boing/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Run a demo",
	Long: `Start the specified demo.

Controls:
  Space/P    - Pause all tweens
  R          - Restart the demo
  V          - Reverse running tweens
  Left/Right - Previous/next option
  +/-        - Faster/slower tween clock
  C          - Complete all tweens
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

With --watch the demo restarts whenever the config file changes, picking
up edited presets and curves.

Examples:
  boing play curves
  boing play sequence --fps 30
  boing play orbit --time-scale 0.5
  boing play orbit --config ./boing.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Reload presets when the config file changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	demoID := args[0]

	// Check if demo exists
	if !registry.Exists(demoID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", demoID)
		fmt.Fprintln(os.Stderr, "Run 'boing list' to see available demos.")
		os.Exit(1)
	}

	logger := newLogger(true)
	engine, source, err := loadEngine(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	demo, err := registry.Create(demoID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
		os.Exit(1)
	}

	var watcher *config.Watcher
	if flagWatch {
		if _, statErr := os.Stat(source); statErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: no config file to watch (using %s)\n", source)
		} else if watcher, err = config.Watch(source); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not watch %s: %v\n", source, err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the demo still works
		store = nil
	}

	host, err := tui.NewHost(engine, store, runtimeConfig(engine.Host()))
	if err != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(host, demo, watcher)

	// Close store before potential exit
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		os.Exit(1)
	}
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
