// Package tui provides the Bubble Tea host for boing demos.
// It handles the terminal UI loop, input mapping and scheduler ticking.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boing/internal/config"
)

// TickMsg is sent to trigger a host tick. Loop identifies the tick loop
// that scheduled it, so a model ignores ticks left over from an earlier one.
type TickMsg struct {
	At   time.Time
	Loop int64
}

var loops atomic.Int64

// nextLoop returns a fresh tick loop identifier.
func nextLoop() int64 {
	return loops.Add(1)
}

// ReloadMsg reports a changed configuration file.
type ReloadMsg struct {
	Path string
	File config.File
	Err  error
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}

// watchCmd waits for the next change reported by w and reads the file.
// It returns nil once the watcher is closed.
func watchCmd(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			file, err := config.ReadFile(path)
			return ReloadMsg{Path: path, File: file, Err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ReloadMsg{Err: err}
		}
	}
}
