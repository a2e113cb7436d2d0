package runner

// Snapshot is a copy of everything a renderer needs for one frame.
// Changing it has no effect on the session it came from.
type Snapshot struct {
	Phase      Phase
	Player     Player
	Obstacles  []Obstacle
	Score      int // Displayed score (raw / divisor)
	FinalScore int // Set once the phase is PhaseGameOver
	Tick       int
	Params     Params
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, s.field.Len())
	copy(obstacles, s.field.Obstacles())

	return Snapshot{
		Phase:      s.phase,
		Player:     s.player,
		Obstacles:  obstacles,
		Score:      s.DisplayScore(),
		FinalScore: s.finalScore,
		Tick:       s.tick,
		Params:     s.params,
	}
}
