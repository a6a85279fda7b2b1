package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boing/internal/core"
)

var (
	stylesMu sync.Mutex
	styles   = map[core.Color]lipgloss.Style{}

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
)

// styleFor returns a cached true-color style for c. The zero color keeps
// the terminal default.
func styleFor(c core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	if s, ok := styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !c.IsZero() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	styles[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderStatus draws the host status line below the demo.
func RenderStatus(title string, state core.DemoState, timeScale float64, paused bool, width int) string {
	left := fmt.Sprintf(" %s  |  %s  |  tweens: %d  |  x%.2f", title, state.Status, state.Active, timeScale)
	if paused {
		left = pausedStyle.Render("PAUSED") + statusStyle.Render(left)
	} else {
		left = statusStyle.Render(left)
	}
	help := statusStyle.Render("space pause  r restart  v reverse  ←/→ select  +/- speed  c complete  b back ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + help
}
