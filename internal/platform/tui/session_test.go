package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/registry"
)

var lastFake *fakeDemo

func init() {
	registry.Register("tui-fake", func() registry.Demo {
		lastFake = &fakeDemo{id: "tui-fake"}
		return lastFake
	})
}

func sessionFor(t *testing.T) SessionModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, TimeScale: 1}
	host := testHost(t, nil)
	m := NewSessionModel(host, nil, cfg)
	for i, item := range m.menu.items {
		if item.DemoID == "tui-fake" {
			m.menu.cursor = i
		}
	}
	return m
}

func send(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionMenuToDemoAndBack(t *testing.T) {
	m := sessionFor(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.demo == nil {
		t.Fatal("Enter should start the selected demo")
	}
	if m.host.Demo() == nil || m.host.Demo().ID() != "tui-fake" {
		t.Fatalf("host demo = %v, expected tui-fake", m.host.Demo())
	}
	demo := lastFake

	m = send(m, TickMsg{Loop: m.demo.loop})
	m = send(m, TickMsg{Loop: m.demo.loop + 1000})
	if demo.steps != 1 {
		t.Errorf("steps = %d, expected stale tick loop ignored", demo.steps)
	}
	if !strings.Contains(m.View(), "Fake tui-fake") {
		t.Error("demo view should show the status line")
	}

	m = send(m, runeKey("b"))
	if m.demo != nil {
		t.Error("b should return to the menu")
	}
	if m.host.Demo() != nil {
		t.Error("leaving a demo should finish its run")
	}
	if !strings.Contains(m.View(), "B O I N G") {
		t.Error("menu view expected after back")
	}
}

func TestSessionHistory(t *testing.T) {
	m := sessionFor(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.history == nil {
		t.Fatal("Tab should open the history")
	}
	if !strings.Contains(m.View(), "RUN HISTORY") {
		t.Error("history view expected")
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty history should say so")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.history != nil {
		t.Error("Esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := sessionFor(t)

	m = send(m, runeKey("q"))
	if !m.quitting {
		t.Error("q should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestMenuResult(t *testing.T) {
	cfg := core.DefaultConfig()

	m := NewMenuModel(cfg)
	if r := m.Result(); !r.Quit {
		t.Errorf("Result() without a choice = %+v, expected Quit", r)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	r := m.Result()
	if r.DemoID == "" || r.Quit {
		t.Errorf("Result() after Enter = %+v", r)
	}
	if r.Config.ScreenW != 100 || r.Config.ScreenH != 30 {
		t.Errorf("Result().Config = %+v, expected resized", r.Config)
	}
}
