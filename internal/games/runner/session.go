package runner

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // Static scene, waiting for Start
	PhaseRunning               // Ticking
	PhaseGameOver              // Frozen on the collision frame until Reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult describes what a call to Session.Tick did.
type TickResult int

const (
	TickStale    TickResult = iota // Ignored: not running or outdated generation
	TickContinue                   // Advanced; schedule the next tick
	TickGameOver                   // Advanced into a collision; stop ticking
)

// Session owns the state of one game: the player, the obstacle field, the
// score and the lifecycle phase. All methods must be called from a single
// goroutine; commands issued in the wrong phase are no-ops that return false.
type Session struct {
	params     Params
	rng        RandomSource
	player     Player
	field      *Field
	phase      Phase
	score      int // Raw score, incremented per surviving tick
	finalScore int
	tick       int
	generation uint64 // Bumped on every transition out of or into Running
	listeners  []func(Event)
}

// NewSession creates an idle session. rng decides obstacle spawns.
func NewSession(params Params, rng RandomSource) *Session {
	s := &Session{
		params: params,
		rng:    rng,
	}
	s.restore()
	return s
}

// restore replaces the player and field with fresh ones and zeroes the score.
func (s *Session) restore() {
	s.player = s.params.Physics.Grounded()
	s.field = NewField(s.params.Field, s.rng)
	s.score = 0
	s.finalScore = 0
	s.tick = 0
}

// Subscribe registers fn to receive every future event.
func (s *Session) Subscribe(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Session) emit(e Event) {
	for _, fn := range s.listeners {
		fn(e)
	}
}

// Start begins a run from the idle screen. It returns the generation that
// ticks of this run must carry.
func (s *Session) Start() (uint64, bool) {
	if s.phase != PhaseIdle {
		return 0, false
	}

	s.restore()
	s.phase = PhaseRunning
	s.generation++
	s.emit(StartedEvent{Generation: s.generation})
	return s.generation, true
}

// Tick advances a running session by one step. Ticks scheduled for an
// earlier generation are rejected so a stale callback cannot touch a run
// that ended or was reset in the meantime.
func (s *Session) Tick(gen uint64) TickResult {
	if s.phase != PhaseRunning || gen != s.generation {
		return TickStale
	}

	s.tick++
	s.player = s.params.Physics.Step(s.player)
	s.field.Advance()

	if s.params.Hitbox.HasCollision(s.player, s.field.Obstacles()) {
		s.phase = PhaseGameOver
		s.generation++
		s.finalScore = s.DisplayScore()
		s.emit(GameOverEvent{
			Ticks:      s.tick,
			Score:      s.score,
			FinalScore: s.finalScore,
		})
		return TickGameOver
	}

	s.score += s.params.ScorePerTick
	return TickContinue
}

// Jump launches the player if the run is active and the player is grounded.
func (s *Session) Jump() bool {
	if s.phase != PhaseRunning {
		return false
	}

	var jumped bool
	s.player, jumped = s.params.Physics.Jump(s.player)
	if jumped {
		s.emit(JumpedEvent{Tick: s.tick})
	}
	return jumped
}

// Reset returns a finished session to the idle screen.
func (s *Session) Reset() bool {
	if s.phase != PhaseGameOver {
		return false
	}

	s.restore()
	s.phase = PhaseIdle
	s.generation++
	s.emit(ResetEvent{})
	return true
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Generation returns the id that ticks of the current run must carry.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Score returns the raw score.
func (s *Session) Score() int {
	return s.score
}

// DisplayScore returns the score shown to the player.
func (s *Session) DisplayScore() int {
	if s.params.ScoreDivisor <= 0 {
		return s.score
	}
	return s.score / s.params.ScoreDivisor
}

// FinalScore returns the displayed score at the moment of collision.
func (s *Session) FinalScore() int {
	return s.finalScore
}

// Player returns the player's current state.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns the live obstacles, leftmost first.
func (s *Session) Obstacles() []Obstacle {
	return s.field.Obstacles()
}
