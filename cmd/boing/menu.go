package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boing/internal/platform/tui"
	"github.com/vovakirdan/boing/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick demos interactively",
	Long: `Open the demo picker. Select a demo with Enter, press Tab for the run
history, and Esc/B inside a demo to return to the picker.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	logger := newLogger(true)
	engine, _, err := loadEngine(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig(engine.Host())
	host, err := tui.NewHost(engine, store, cfg)
	if err != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.RunSession(host, store, cfg)
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
