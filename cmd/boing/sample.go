package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boing/internal/config"
	"github.com/vovakirdan/boing/internal/ease"
)

var (
	flagSteps  int
	flagWidth  int
	flagScript string
)

var (
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	overshootStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))
	headerStyle    = lipgloss.NewStyle().Bold(true)
)

var sampleCmd = &cobra.Command{
	Use:   "sample [ease|curve]",
	Short: "Print an easing curve",
	Long: `Evaluate an easing function at evenly spaced points and print the values
with a bar for each row. Values outside [0, 1] are marked.

The name is looked up in the built-in catalog first, then among the custom
curves of the loaded config. --script samples an expression of t directly.

Examples:
  boing sample quad_in_out
  boing sample elastic_out --steps 20
  boing sample wobble --config ./boing.yaml
  boing sample --script "t * t * (3 - 2 * t)"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSample,
}

func init() {
	sampleCmd.Flags().IntVar(&flagSteps, "steps", 10, "Number of intervals across [0, 1]")
	sampleCmd.Flags().IntVar(&flagWidth, "width", 40, "Bar width in characters")
	sampleCmd.Flags().StringVar(&flagScript, "script", "", "Sample an expression of t instead of a named curve")
}

func runSample(cmd *cobra.Command, args []string) {
	logger := newLogger(false)

	var (
		name string
		fn   func(p float64) float64
	)
	switch {
	case flagScript != "":
		curve, err := ease.NewScriptCurve(flagScript, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		name, fn = flagScript, curve.Evaluate
	case len(args) == 1:
		var err error
		name = args[0]
		fn, err = lookupCurve(name, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'boing sample --help' for the list of easing types.")
			os.Exit(1)
		}
	default:
		fmt.Println("Easing types:")
		for _, t := range ease.Types() {
			fmt.Printf("  %s\n", t)
		}
		return
	}

	fmt.Println(headerStyle.Render(name))
	fmt.Print(renderSamples(ease.Sample(fn, flagSteps), flagWidth))
}

// lookupCurve resolves a catalog name, then a custom curve from config.
func lookupCurve(name string, logger *log.Logger) (func(p float64) float64, error) {
	if t, err := ease.ParseType(name); err == nil {
		return t.Func(), nil
	}

	file, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return nil, err
	}
	if _, ok := file.Curves[name]; !ok {
		return nil, fmt.Errorf("unknown ease or curve %q (config: %s)", name, source)
	}
	logger.Debug("sampling custom curve", "name", name, "config", source)

	curves, err := file.BuildCurves(logger)
	if err != nil {
		return nil, err
	}
	return curves[name].Evaluate, nil
}

// renderSamples prints one row per sample: progress, value and a bar.
func renderSamples(values []float64, width int) string {
	if width < 2 {
		width = 2
	}
	steps := max(len(values)-1, 1)

	var b strings.Builder
	for i, v := range values {
		p := float64(i) / float64(steps)
		fill := int(math.Round(math.Max(0, math.Min(1, v)) * float64(width)))

		bar := barStyle.Render(strings.Repeat("█", fill))
		mark := ""
		if v < 0 || v > 1 {
			mark = overshootStyle.Render(" !")
		}
		fmt.Fprintf(&b, "  %5.2f  %8.4f  %s%s\n", p, v, bar, mark)
	}
	return b.String()
}
