package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Scheduler runs a callback on the next display frame.
// core.FrameQueue is the implementation used by both frontends.
type Scheduler interface {
	Request(fn func()) core.FrameID
	Cancel(id core.FrameID)
}

// Sink consumes snapshots for display. It must not call back into the loop.
type Sink interface {
	Render(snap Snapshot)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(snap Snapshot)

// Render calls f(snap).
func (f SinkFunc) Render(snap Snapshot) {
	f(snap)
}

// Loop drives a Session from a frame scheduler: one tick per frame while
// running, one render after every tick and lifecycle change.
//
// Two guards keep a reset from being overtaken by an old tick: the loop
// cancels its pending frame, and every frame carries the generation it was
// scheduled for, which the session checks.
type Loop struct {
	session   *Session
	scheduler Scheduler
	sink      Sink
	pending   core.FrameID // Zero when no tick is scheduled
}

// NewLoop wires a session to a scheduler and a sink and renders the idle scene.
func NewLoop(session *Session, scheduler Scheduler, sink Sink) *Loop {
	l := &Loop{
		session:   session,
		scheduler: scheduler,
		sink:      sink,
	}
	l.render()
	return l
}

// Start begins a run and schedules its first tick.
func (l *Loop) Start() bool {
	gen, ok := l.session.Start()
	if !ok {
		return false
	}
	l.render()
	l.schedule(gen)
	return true
}

// Reset cancels any scheduled tick and returns to the idle scene.
func (l *Loop) Reset() bool {
	if !l.session.Reset() {
		return false
	}
	l.cancel()
	l.render()
	return true
}

// Jump forwards a jump intent to the session.
func (l *Loop) Jump() bool {
	return l.session.Jump()
}

// Scheduled reports whether a tick is waiting for the next frame.
func (l *Loop) Scheduled() bool {
	return l.pending != 0
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

func (l *Loop) schedule(gen uint64) {
	var id core.FrameID
	id = l.scheduler.Request(func() {
		if l.pending == id {
			l.pending = 0
		}
		l.frame(gen)
	})
	l.pending = id
}

func (l *Loop) cancel() {
	if l.pending == 0 {
		return
	}
	l.scheduler.Cancel(l.pending)
	l.pending = 0
}

// frame runs one scheduled tick.
func (l *Loop) frame(gen uint64) {
	switch l.session.Tick(gen) {
	case TickStale:
		return
	case TickContinue:
		l.render()
		l.schedule(gen)
	case TickGameOver:
		// Last frame shows the moment of collision
		l.render()
	}
}

func (l *Loop) render() {
	if l.sink != nil {
		l.sink.Render(l.session.Snapshot())
	}
}
