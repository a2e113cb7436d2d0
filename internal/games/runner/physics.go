package runner

// Player is the runner's vertical state.
type Player struct {
	Y        float64 // Top edge; never below Physics.GroundY
	VY       float64 // Vertical velocity, negative = up
	Airborne bool    // False whenever the player rests on the ground
}

// Physics integrates the player's vertical motion under constant gravity.
type Physics struct {
	Gravity   float64 // Added to velocity every tick
	JumpForce float64 // Velocity set by a jump
	GroundY   float64 // Resting Y of the player
}

// Grounded returns a player at rest on the ground.
func (ph Physics) Grounded() Player {
	return Player{Y: ph.GroundY}
}

// Step advances p by one tick and clamps it to the ground.
func (ph Physics) Step(p Player) Player {
	p.VY += ph.Gravity
	p.Y += p.VY

	if p.Y >= ph.GroundY {
		p.Y = ph.GroundY
		p.VY = 0
		p.Airborne = false
	}
	return p
}

// Jump launches a grounded player and reports whether it did.
// Requests while airborne are ignored so a held key cannot double-jump.
func (ph Physics) Jump(p Player) (Player, bool) {
	if p.Airborne {
		return p, false
	}
	p.VY = ph.JumpForce
	p.Airborne = true
	return p, true
}
