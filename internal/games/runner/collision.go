package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Hitbox holds the fixed box sizes used for collision tests.
type Hitbox struct {
	LaneX          float64 // Player's fixed left edge
	PlayerSize     float64 // Player box is square
	ObstacleWidth  float64
	ObstacleHeight float64
}

// Player returns the player's box.
func (h Hitbox) Player(p Player) core.Box {
	return core.NewBox(h.LaneX, p.Y, h.PlayerSize, h.PlayerSize)
}

// Obstacle returns an obstacle's box, standing on its baseline.
func (h Hitbox) Obstacle(o Obstacle) core.Box {
	return core.NewBox(o.X, o.GroundY-h.ObstacleHeight, h.ObstacleWidth, h.ObstacleHeight)
}

// HasCollision reports whether the player hits any live obstacle.
// A hit needs horizontal overlap and the player's bottom edge below the
// obstacle's top edge; touching edges are not a hit.
func (h Hitbox) HasCollision(p Player, obstacles []Obstacle) bool {
	pb := h.Player(p)
	for _, o := range obstacles {
		ob := h.Obstacle(o)
		if pb.OverlapsX(ob) && pb.Bottom() > ob.Top() {
			return true
		}
	}
	return false
}
