package runner

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestNewSessionIsIdle(t *testing.T) {
	s := quietSession()

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", s.Phase())
	}
	if s.Score() != 0 || len(s.Obstacles()) != 0 {
		t.Errorf("new session should be empty, score=%d obstacles=%d", s.Score(), len(s.Obstacles()))
	}
	if s.Tick(s.Generation()) != TickStale {
		t.Error("Tick() on an idle session should be stale")
	}
}

func TestStartThenTenTicks(t *testing.T) {
	s := quietSession()

	gen, ok := s.Start()
	if !ok {
		t.Fatal("Start() from idle should succeed")
	}
	if s.Phase() != PhaseRunning || s.Score() != 0 || len(s.Obstacles()) != 0 {
		t.Fatalf("after Start: phase=%v score=%d obstacles=%d", s.Phase(), s.Score(), len(s.Obstacles()))
	}

	for i := 0; i < 10; i++ {
		if got := s.Tick(gen); got != TickContinue {
			t.Fatalf("tick %d = %v, expected TickContinue", i, got)
		}
	}

	if s.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", s.Score())
	}
	p := s.Player()
	if p.Airborne || p.Y != DefaultParams().Physics.GroundY {
		t.Errorf("player should still be grounded, got %+v", p)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	s := quietSession()
	gen, _ := s.Start()

	for i := 0; i < 25; i++ {
		s.Tick(gen)
	}

	s.field.add(Obstacle{X: 100, GroundY: DefaultParams().Physics.GroundY})

	if got := s.Tick(gen); got != TickGameOver {
		t.Fatalf("Tick() = %v, expected TickGameOver", got)
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected game over", s.Phase())
	}
	// The colliding tick does not score
	if s.Score() != 25 {
		t.Errorf("Score() = %d, expected 25", s.Score())
	}
	if s.FinalScore() != 2 {
		t.Errorf("FinalScore() = %d, expected floor(25/10) = 2", s.FinalScore())
	}

	// Frozen: further ticks, even with the old generation, change nothing
	before := s.Snapshot()
	if got := s.Tick(gen); got != TickStale {
		t.Errorf("Tick() after game over = %v, expected TickStale", got)
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("state changed after game over")
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	s := quietSession()
	gen, _ := s.Start()
	s.Jump()
	s.Tick(gen)
	s.field.add(Obstacle{X: 100, GroundY: DefaultParams().Physics.GroundY})
	s.Tick(gen)

	if s.Phase() != PhaseGameOver {
		t.Fatalf("setup: Phase() = %v, expected game over", s.Phase())
	}

	if !s.Reset() {
		t.Fatal("Reset() from game over should succeed")
	}

	ph := DefaultParams().Physics
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", s.Phase())
	}
	if s.Score() != 0 || s.FinalScore() != 0 {
		t.Errorf("score not cleared: score=%d final=%d", s.Score(), s.FinalScore())
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("field not cleared: %d obstacles", len(s.Obstacles()))
	}
	if s.Player() != ph.Grounded() {
		t.Errorf("player not grounded: %+v", s.Player())
	}

	if got := s.Tick(gen); got != TickStale {
		t.Errorf("Tick(old generation) after reset = %v, expected TickStale", got)
	}
	if got := s.Tick(s.Generation()); got != TickStale {
		t.Errorf("Tick() while idle = %v, expected TickStale", got)
	}
}

func TestStaleGenerationAfterRestart(t *testing.T) {
	s := quietSession()
	oldGen, _ := s.Start()
	s.field.add(Obstacle{X: 100, GroundY: DefaultParams().Physics.GroundY})
	s.Tick(oldGen)
	s.Reset()

	newGen, ok := s.Start()
	if !ok {
		t.Fatal("Start() after reset should succeed")
	}
	if newGen == oldGen {
		t.Fatal("restart should issue a new generation")
	}

	if got := s.Tick(oldGen); got != TickStale {
		t.Errorf("Tick(old generation) = %v, expected TickStale", got)
	}
	if s.Score() != 0 {
		t.Errorf("stale tick changed the score to %d", s.Score())
	}
	if got := s.Tick(newGen); got != TickContinue {
		t.Errorf("Tick(new generation) = %v, expected TickContinue", got)
	}
}

func TestCommandsInWrongPhaseAreNoOps(t *testing.T) {
	s := quietSession()

	if s.Jump() {
		t.Error("Jump() while idle should be ignored")
	}
	if s.Reset() {
		t.Error("Reset() while idle should be ignored")
	}

	s.Start()
	if _, ok := s.Start(); ok {
		t.Error("Start() while running should be ignored")
	}
	if s.Reset() {
		t.Error("Reset() while running should be ignored")
	}

	s.field.add(Obstacle{X: 100, GroundY: DefaultParams().Physics.GroundY})
	s.Tick(s.Generation())

	if s.Jump() {
		t.Error("Jump() after game over should be ignored")
	}
	if _, ok := s.Start(); ok {
		t.Error("Start() after game over should be ignored until Reset")
	}
}

func TestSessionJumpDebounce(t *testing.T) {
	s := quietSession()
	gen, _ := s.Start()

	if !s.Jump() {
		t.Fatal("first Jump() should succeed")
	}
	vy := s.Player().VY
	if s.Jump() {
		t.Error("second Jump() before landing should be ignored")
	}
	if s.Player().VY != vy {
		t.Errorf("ignored jump changed velocity from %v to %v", vy, s.Player().VY)
	}

	s.Tick(gen)
	if s.Jump() {
		t.Error("Jump() mid-air should be ignored")
	}
}

func TestSessionEvents(t *testing.T) {
	s := quietSession()

	var events []Event
	s.Subscribe(func(e Event) {
		events = append(events, e)
	})

	gen, _ := s.Start()
	s.Jump()
	s.Jump() // Ignored, no event
	for i := 0; i < 45; i++ {
		s.Tick(gen)
	}
	// Player has landed again; put an obstacle right in the lane
	s.field.add(Obstacle{X: 100, GroundY: DefaultParams().Physics.GroundY})
	s.Tick(gen)
	s.Reset()

	expected := []Event{
		StartedEvent{Generation: gen},
		JumpedEvent{Tick: 0},
		GameOverEvent{Ticks: 46, Score: 45, FinalScore: 4},
		ResetEvent{},
	}
	if !reflect.DeepEqual(events, expected) {
		t.Errorf("events = %#v\nexpected %#v", events, expected)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := quietSession()
	s.Start()
	s.field.add(Obstacle{X: 500, GroundY: DefaultParams().Physics.GroundY})

	snap := s.Snapshot()
	snap.Obstacles[0].X = 0
	snap.Player.Y = 0

	if s.Obstacles()[0].X != 500 {
		t.Error("editing a snapshot obstacle changed the session")
	}
	if s.Player().Y == 0 {
		t.Error("editing the snapshot player changed the session")
	}
}

func TestSessionDeterminism(t *testing.T) {
	// Same seed and same inputs must give the same run
	run := func() Snapshot {
		s := NewSession(DefaultParams(), rand.New(rand.NewSource(12345)))
		gen, _ := s.Start()
		for i := 0; i < 3000; i++ {
			if i%45 == 0 {
				s.Jump()
			}
			if s.Tick(gen) != TickContinue {
				break
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("determinism failed:\n run1 %+v\n run2 %+v", a, b)
	}
}
