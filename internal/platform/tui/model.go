package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boing/internal/config"
	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/registry"
)

// statusRows is the number of rows below the demo used by the status line.
const statusRows = 1

// Model is the Bubble Tea model for running one demo.
type Model struct {
	host       *Host
	engine     *Engine
	watcher    *config.Watcher
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	loop       int64
	width      int
	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone play quits instead of returning to a menu
}

// NewModel creates a model that runs demo on host.
func NewModel(host *Host, demo registry.Demo) Model {
	host.Load(demo)
	return Model{
		host:       host,
		engine:     host.engine,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
		width:      host.config.ScreenW,
	}
}

// WithWatcher reloads presets whenever w reports a change.
func (m Model) WithWatcher(w *config.Watcher) Model {
	m.watcher = w
	return m
}

// Init starts the tick loop and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.host.config.TickRate, m.loop), watchCmd(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.host.Resize(msg.Width, max(msg.Height-statusRows, 1))
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()

	case ReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.host.Finish()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.host.Finish()
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	m.host.Step(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.host.config.TickRate, m.loop)
}

func (m Model) handleReload(msg ReloadMsg) (tea.Model, tea.Cmd) {
	log := m.engine.Logger()
	switch {
	case msg.Err != nil:
		log.Warn("config reload failed", "error", msg.Err)
	default:
		if err := m.engine.Reload(msg.File); err != nil {
			log.Warn("config rejected", "path", msg.Path, "error", err)
			break
		}
		m.host.Reload()
		log.Info("config reloaded", "path", msg.Path)
	}
	return m, watchCmd(m.watcher)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	demo := m.host.Demo()
	if demo == nil {
		return
	}
	screen := m.host.Render()

	dir := filepath.Join(os.Getenv("HOME"), ".boing", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", demo.ID(), timestamp))

	//nolint:errcheck // Best-effort save, demo continues regardless
	os.WriteFile(path, []byte(screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	title := ""
	if d := m.host.Demo(); d != nil {
		title = d.Title()
	}
	status := RenderStatus(title, m.host.State(), m.host.TimeScale(), m.host.Paused(), m.width)
	return RenderScreen(m.host.Render()) + "\n" + status
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one demo. A nil watcher disables
// hot reload.
func Run(host *Host, demo registry.Demo, watcher *config.Watcher) error {
	model := NewModel(host, demo).WithWatcher(watcher)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	host.Finish()
	return err
}
