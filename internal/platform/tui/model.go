package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/logging"
)

// scene holds the latest snapshot published by the loop.
// It lives behind a pointer so copies of Model share it.
type scene struct {
	snap runner.Snapshot
}

func (s *scene) Render(snap runner.Snapshot) {
	s.snap = snap
}

// Model is the Bubble Tea model for the runner.
type Model struct {
	loop     *runner.Loop
	frames   *core.FrameQueue
	scene    *scene
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model with a fresh session in the idle phase.
func NewModel(params runner.Params, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	session := runner.NewSession(params, rand.New(rand.NewSource(cfg.Seed)))
	session.Subscribe(logging.Events(logger))

	frames := core.NewFrameQueue()
	sc := &scene{}
	loop := runner.NewLoop(session, frames, sc)

	return Model{
		loop:   loop,
		frames: frames,
		scene:  sc,
		screen: core.NewScreen(cfg.ScreenW, viewHeight(cfg.ScreenH)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		config: cfg,
	}
}

// viewHeight reserves the last terminal row for the help line.
func viewHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the display tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.loop.Jump()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, viewHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.frames.Flush()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlS {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.loop.Jump()
	case core.ActionStart:
		m.loop.Start()
	case core.ActionReset:
		m.loop.Reset()
	}

	return m, nil
}

// saveScreenshot writes the current frame as plain text under ~/.runner/screenshots.
func (m Model) saveScreenshot() (string, error) {
	runner.Draw(m.screen, m.scene.snap)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405")))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the latest snapshot followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	runner.Draw(m.screen, m.scene.snap)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the runner.
func Run(params runner.Params, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(params, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // left click jumps
	)

	_, err := p.Run()
	return err
}
