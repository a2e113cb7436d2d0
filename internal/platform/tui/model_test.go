package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

func testModel() Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return NewModel(runner.DefaultParams(), cfg, log.New(io.Discard))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelStartsIdle(t *testing.T) {
	m := testModel()

	if phase := m.loop.Session().Phase(); phase != runner.PhaseIdle {
		t.Fatalf("initial phase = %v, expected idle", phase)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Press ENTER to start") {
		t.Errorf("idle view missing start prompt:\n%s", view)
	}
}

func TestModelEnterStartsAndTicksAdvance(t *testing.T) {
	m := testModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if phase := m.loop.Session().Phase(); phase != runner.PhaseRunning {
		t.Fatalf("phase after enter = %v, expected running", phase)
	}

	// Obstacles spawn at the far edge and cannot reach the runner in 10 frames.
	for i := 0; i < 10; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{})
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}
	if score := m.loop.Session().Score(); score != 10 {
		t.Errorf("score after 10 frames = %d, expected 10", score)
	}
}

func TestModelTickWithoutRunIsIdle(t *testing.T) {
	m := testModel()

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if score := m.loop.Session().Score(); score != 0 {
		t.Errorf("score in idle = %d, expected 0", score)
	}
}

func TestModelMouseClickJumps(t *testing.T) {
	m := testModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.loop.Session().Player().Airborne {
		t.Error("left click should make the runner jump")
	}
}

func TestModelResetOnlyAfterGameOver(t *testing.T) {
	m := testModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, runeKey('r'))
	if phase := m.loop.Session().Phase(); phase != runner.PhaseRunning {
		t.Errorf("r during a run changed phase to %v", phase)
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel()

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestModelResizeKeepsHelpRow(t *testing.T) {
	m := testModel()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, expected 30", len(lines))
	}
}
