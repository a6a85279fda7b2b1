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

var (
	flagRunsLimit int
	flagRunsClear bool
	flagBrowse    bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [demo]",
	Short: "Show recorded demo runs",
	Long: `Display recent runs and per-demo totals. With a demo id only that
demo's runs are shown.

Examples:
  boing runs
  boing runs orbit --limit 5
  boing runs curves --clear
  boing runs --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of recent runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the recorded runs instead of showing them")
	runsCmd.Flags().BoolVarP(&flagBrowse, "browse", "b", false, "Browse runs in an interactive table")
}

func runRuns(cmd *cobra.Command, args []string) {
	demoID := ""
	if len(args) == 1 {
		demoID = args[0]
		if !registry.Exists(demoID) {
			fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", demoID)
			fmt.Fprintln(os.Stderr, "Run 'boing list' to see available demos.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		n, err := store.ClearRuns(demoID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return
	}

	if flagBrowse {
		cfg := runtimeConfig(config.HostConfig{})
		if _, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(demoID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'boing play <demo>' to record one!")
		return
	}

	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-10s  %7s  %7s  %5s  %5s  %7s  %s\n", "Demo", "Ticks", "Tweens", "Peak", "Scale", "Secs", "Date")
	fmt.Printf("  %-10s  %7s  %7s  %5s  %5s  %7s  %s\n", "----", "-----", "------", "----", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-10s  %7d  %7d  %5d  %5.2f  %7.1f  %s\n",
			r.DemoID, r.Ticks, r.TweensComplete, r.PeakActive, r.TimeScale, r.WallSeconds,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	summaries, err := store.Summaries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Totals")
	fmt.Println()
	for _, s := range summaries {
		if demoID != "" && s.DemoID != demoID {
			continue
		}
		fmt.Printf("  %-10s  %4d runs  %8d ticks  %7d tweens  %8.1fs\n",
			s.DemoID, s.Runs, s.Ticks, s.Completed, s.WallSeconds)
	}
}
