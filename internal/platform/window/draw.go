package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// Palette, in canvas order.
var (
	colorSky        = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorGround     = color.RGBA{0x16, 0xa3, 0x4a, 0xff}
	colorGroundLine = color.RGBA{0x15, 0x80, 0x3d, 0xff}
	colorPlayer     = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	colorEyes       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorObstacle   = color.RGBA{0xdc, 0x26, 0x26, 0xff}
	colorScore      = color.RGBA{0x1f, 0x29, 0x37, 0xff}
	colorOverlay    = color.RGBA{0x00, 0x00, 0x00, 0x80}
)

const (
	groundLineThickness = 4
	scoreMargin         = 20
)

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.snap
	v := snap.Params.View
	hb := snap.Params.Hitbox

	screen.Fill(colorSky)

	fillRect(screen, core.NewBox(0, v.GroundLine, v.Width, v.Height-v.GroundLine), colorGround)
	fillRect(screen, core.NewBox(0, v.GroundLine, v.Width, groundLineThickness), colorGroundLine)

	body := hb.Player(snap.Player)
	fillRect(screen, body, colorPlayer)
	eye := body.W / 5
	fillRect(screen, core.NewBox(body.X+eye, body.Y+eye, eye, eye), colorEyes)
	fillRect(screen, core.NewBox(body.X+eye*3, body.Y+eye, eye, eye), colorEyes)

	for _, o := range snap.Obstacles {
		fillRect(screen, hb.Obstacle(o), colorObstacle)
	}

	if snap.Phase != runner.PhaseIdle {
		g.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), 16,
			v.Width-scoreMargin, scoreMargin, text.AlignEnd, colorScore)
	}

	switch snap.Phase {
	case runner.PhaseIdle:
		g.drawOverlay(screen, "RUNNER",
			"Press ENTER or CLICK to start",
			"SPACE or TAP to jump")
	case runner.PhaseGameOver:
		g.drawOverlay(screen, "Game Over!",
			fmt.Sprintf("Score: %d", snap.FinalScore),
			"Press R or CLICK to play again")
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, title string, lines ...string) {
	v := g.snap.Params.View
	fillRect(screen, core.NewBox(0, 0, v.Width, v.Height), colorOverlay)

	y := v.Height/2 - 60
	g.drawText(screen, title, 28, v.Width/2, y, text.AlignCenter, color.White)
	y += 60
	for _, line := range lines {
		g.drawText(screen, line, 12, v.Width/2, y, text.AlignCenter, color.White)
		y += 30
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, size, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, &text.GoTextFace{
		Source: g.face,
		Size:   size,
	}, op)
}

func fillRect(screen *ebiten.Image, b core.Box, clr color.Color) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
}
