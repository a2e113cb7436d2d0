// Package window provides a desktop frontend for the runner built on Ebiten.
// It draws the world at its native pixel size with keyboard, mouse and touch input.
package window

import (
	"bytes"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/logging"
)

const windowTitle = "Runner"

// Game implements ebiten.Game on top of a runner loop.
type Game struct {
	loop     *runner.Loop
	frames   *core.FrameQueue
	snap     runner.Snapshot
	face     *text.GoTextFaceSource
	touchIDs []ebiten.TouchID
}

// New creates a window game with a fresh session in the idle phase.
func New(params runner.Params, cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	face, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	session := runner.NewSession(params, rand.New(rand.NewSource(cfg.Seed)))
	session.Subscribe(logging.Events(logger))

	g := &Game{
		frames: core.NewFrameQueue(),
		face:   face,
	}
	g.loop = runner.NewLoop(session, g.frames, g)
	return g, nil
}

// Render stores the latest snapshot for Draw.
func (g *Game) Render(snap runner.Snapshot) {
	g.snap = snap
}

// Update reads input and runs the frame callbacks due this frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.dispatch(core.ActionJump)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.dispatch(core.ActionStart)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.dispatch(core.ActionReset)
	}

	if g.pointerPressed() {
		g.dispatch(pointerAction(g.loop.Session().Phase()))
	}

	g.frames.Flush()
	return nil
}

// pointerPressed reports a new mouse click or touch this frame.
func (g *Game) pointerPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	return len(g.touchIDs) > 0
}

// pointerAction maps a click or tap to the command that fits the phase:
// it starts from the idle screen, jumps during a run and leaves the game over screen.
func pointerAction(phase runner.Phase) core.Action {
	switch phase {
	case runner.PhaseIdle:
		return core.ActionStart
	case runner.PhaseRunning:
		return core.ActionJump
	case runner.PhaseGameOver:
		return core.ActionReset
	}
	return core.ActionNone
}

func (g *Game) dispatch(a core.Action) {
	switch a {
	case core.ActionJump:
		g.loop.Jump()
	case core.ActionStart:
		g.loop.Start()
	case core.ActionReset:
		g.loop.Reset()
	}
}

// Layout keeps the logical screen at the field size; Ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	v := g.snap.Params.View
	return int(v.Width), int(v.Height)
}

// Run opens the window and blocks until it is closed.
func Run(params runner.Params, cfg core.RuntimeConfig, logger *log.Logger) error {
	g, err := New(params, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(params.View.Width), int(params.View.Height))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("window opened", "width", params.View.Width, "height", params.View.Height, "tps", cfg.TickRate)
	return ebiten.RunGame(g)
}
