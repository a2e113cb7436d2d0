package runner

// Event is emitted by a Session when its lifecycle changes.
// Presentation code subscribes to these instead of being called from the
// simulation.
type Event interface {
	runnerEvent()
}

// StartedEvent is emitted when a run begins.
type StartedEvent struct {
	Generation uint64
}

func (StartedEvent) runnerEvent() {}

// JumpedEvent is emitted when a jump request launched the player.
type JumpedEvent struct {
	Tick int
}

func (JumpedEvent) runnerEvent() {}

// GameOverEvent is emitted on the tick the player hits an obstacle.
type GameOverEvent struct {
	Ticks      int // Ticks survived
	Score      int // Raw score
	FinalScore int // Displayed score
}

func (GameOverEvent) runnerEvent() {}

// ResetEvent is emitted when the session returns to the idle screen.
type ResetEvent struct{}

func (ResetEvent) runnerEvent() {}
