package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar     = '█'
	EyeChar        = '▪'
	ObstacleChar   = '▓'
	GroundChar     = '░'
	GroundLineChar = '═'
)

// viewport maps world pixels onto screen cells.
type viewport struct {
	cols, rows    float64
	width, height float64 // Field size in pixels
}

func newViewport(dst *core.Screen, v View) viewport {
	return viewport{
		cols:   float64(dst.Width()),
		rows:   float64(dst.Height()),
		width:  v.Width,
		height: v.Height,
	}
}

// rect returns the cells covered by b; anything visible is at least one cell.
func (vp viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * vp.cols / vp.width))
	y0 := int(math.Floor(b.Y * vp.rows / vp.height))
	x1 := int(math.Ceil(b.Right() * vp.cols / vp.width))
	y1 := int(math.Ceil(b.Bottom() * vp.rows / vp.height))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Draw renders a snapshot into a character screen.
func Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := newViewport(dst, snap.Params.View)
	hb := snap.Params.Hitbox

	// Grass strip below the ground line
	ground := vp.rect(core.NewBox(0, snap.Params.View.GroundLine, snap.Params.View.Width,
		snap.Params.View.Height-snap.Params.View.GroundLine))
	dst.FillRect(ground, GroundChar, core.ColorGround)
	dst.DrawHLine(0, ground.Y, dst.Width(), GroundLineChar, core.ColorGroundLine)

	for _, o := range snap.Obstacles {
		dst.FillRect(vp.rect(hb.Obstacle(o)), ObstacleChar, core.ColorObstacle)
	}

	drawPlayer(dst, vp, hb, snap.Player)

	// HUD
	if snap.Phase != PhaseIdle {
		scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
		dst.DrawTextColored(dst.Width()-len(scoreText)-2, 0, scoreText, core.ColorText)
	}

	switch snap.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, "RUNNER", "Press ENTER to start", "SPACE or UP to jump")
	case PhaseGameOver:
		drawCenteredMessage(dst, "Game Over!", fmt.Sprintf("Score: %d", snap.FinalScore), "Press R to play again")
	}
}

// drawPlayer renders the runner with its two eyes.
func drawPlayer(dst *core.Screen, vp viewport, hb Hitbox, p Player) {
	body := vp.rect(hb.Player(p))
	dst.FillRect(body, PlayerChar, core.ColorPlayer)

	// Eyes sit a fifth of the way down, at a fifth and three fifths across
	if body.W < 3 {
		return
	}
	eyeY := body.Y + body.H/5
	dst.SetColored(body.X+body.W/5, eyeY, EyeChar, core.ColorEyes)
	dst.SetColored(body.X+body.W*3/5, eyeY, EyeChar, core.ColorEyes)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextColored(boxX+(boxW-len(l))/2, boxY+3+i, l, core.ColorWhite)
	}
}
