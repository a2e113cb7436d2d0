package runner

// RandomSource supplies uniform values in [0, 1).
// *math/rand.Rand satisfies it; tests inject fixed sequences.
type RandomSource interface {
	Float64() float64
}

// Obstacle is a block standing on the ground that scrolls towards the player.
// Its width and height are fixed by FieldParams.
type Obstacle struct {
	X       float64 // Left edge
	GroundY float64 // Baseline the obstacle stands on (its bottom edge)
}

// FieldParams defines the obstacle stream.
type FieldParams struct {
	Width          float64 // Obstacles enter at this X
	GroundY        float64 // Baseline of new obstacles
	ScrollSpeed    float64 // Leftward movement per tick
	SpawnGate      float64 // Rightmost obstacle must be left of this before another spawns
	SpawnChance    float64 // Per-tick spawn probability once the gate is open
	ObstacleWidth  float64
	ObstacleHeight float64
}

// Field owns the live obstacles in spawn order, which is also their
// left-to-right order on screen: spawns append at the right edge and
// pruning only removes from the left.
type Field struct {
	obstacles []Obstacle
	params    FieldParams
	rng       RandomSource
}

// NewField creates an empty field drawing spawn decisions from rng.
func NewField(params FieldParams, rng RandomSource) *Field {
	return &Field{
		obstacles: make([]Obstacle, 0, 8),
		params:    params,
		rng:       rng,
	}
}

// Advance scrolls every obstacle, prunes those that left the screen and
// possibly spawns a new one. It reports whether a spawn happened.
func (f *Field) Advance() bool {
	// Move obstacles left
	for i := range f.obstacles {
		f.obstacles[i].X -= f.params.ScrollSpeed
	}

	// Remove obstacles that have fully left the field
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X > -f.params.ObstacleWidth {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept

	if !f.gateOpen() {
		return false
	}
	if f.rng.Float64() >= f.params.SpawnChance {
		return false
	}

	f.obstacles = append(f.obstacles, Obstacle{
		X:       f.params.Width,
		GroundY: f.params.GroundY,
	})
	return true
}

// gateOpen reports whether the rightmost obstacle has cleared the spawn gate.
func (f *Field) gateOpen() bool {
	if len(f.obstacles) == 0 {
		return true
	}
	return f.obstacles[len(f.obstacles)-1].X < f.params.SpawnGate
}

// add appends an obstacle at the right end of the field.
func (f *Field) add(o Obstacle) {
	f.obstacles = append(f.obstacles, o)
}

// Obstacles returns the live obstacles, leftmost first.
// The slice is owned by the field and is invalidated by the next Advance.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}
