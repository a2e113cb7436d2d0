package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// recordingSink keeps every snapshot it receives.
type recordingSink struct {
	frames []Snapshot
}

func (r *recordingSink) Render(snap Snapshot) {
	r.frames = append(r.frames, snap)
}

func (r *recordingSink) last() Snapshot {
	return r.frames[len(r.frames)-1]
}

// leakyScheduler never forgets a callback, even when cancelled, so tests
// can replay old frames against a newer run.
type leakyScheduler struct {
	callbacks []func()
}

func (l *leakyScheduler) Request(fn func()) core.FrameID {
	l.callbacks = append(l.callbacks, fn)
	return core.FrameID(len(l.callbacks))
}

func (l *leakyScheduler) Cancel(core.FrameID) {}

func TestLoopRendersIdleSceneOnCreation(t *testing.T) {
	sink := &recordingSink{}
	NewLoop(quietSession(), core.NewFrameQueue(), sink)

	if len(sink.frames) != 1 || sink.last().Phase != PhaseIdle {
		t.Fatalf("expected one idle frame, got %d frames", len(sink.frames))
	}
}

func TestLoopTicksOncePerFrame(t *testing.T) {
	frames := core.NewFrameQueue()
	sink := &recordingSink{}
	loop := NewLoop(quietSession(), frames, sink)

	if !loop.Start() {
		t.Fatal("Start() should succeed from idle")
	}
	if !loop.Scheduled() {
		t.Fatal("Start() should schedule the first tick")
	}

	for i := 0; i < 10; i++ {
		if ran := frames.Flush(); ran != 1 {
			t.Fatalf("frame %d ran %d callbacks, expected 1", i, ran)
		}
	}

	if got := loop.Session().Score(); got != 10 {
		t.Errorf("Score() = %d, expected 10", got)
	}
	// Idle + start + one per tick
	if len(sink.frames) != 12 {
		t.Errorf("rendered %d frames, expected 12", len(sink.frames))
	}
	if sink.last().Phase != PhaseRunning {
		t.Errorf("last frame phase = %v, expected running", sink.last().Phase)
	}
}

func TestLoopStopsOnCollision(t *testing.T) {
	frames := core.NewFrameQueue()
	sink := &recordingSink{}
	loop := NewLoop(quietSession(), frames, sink)
	loop.Start()
	frames.Flush()

	loop.Session().field.add(Obstacle{X: 100, GroundY: DefaultParams().Physics.GroundY})
	frames.Flush()

	if loop.Session().Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", loop.Session().Phase())
	}
	if loop.Scheduled() || frames.Pending() != 0 {
		t.Error("no tick should be scheduled after game over")
	}

	last := sink.last()
	if last.Phase != PhaseGameOver || len(last.Obstacles) != 1 {
		t.Errorf("last frame should show the collision, got phase=%v obstacles=%d", last.Phase, len(last.Obstacles))
	}

	rendered := len(sink.frames)
	frames.Flush()
	if len(sink.frames) != rendered {
		t.Error("frames rendered after game over")
	}
}

func TestLoopResetCancelsAndStaysIdle(t *testing.T) {
	frames := core.NewFrameQueue()
	sink := &recordingSink{}
	loop := NewLoop(quietSession(), frames, sink)
	loop.Start()
	loop.Session().field.add(Obstacle{X: 100, GroundY: DefaultParams().Physics.GroundY})
	frames.Flush()

	if !loop.Reset() {
		t.Fatal("Reset() from game over should succeed")
	}
	if loop.Scheduled() {
		t.Error("Reset() should leave nothing scheduled")
	}
	if sink.last().Phase != PhaseIdle {
		t.Errorf("Reset() should render the idle scene, got %v", sink.last().Phase)
	}

	rendered := len(sink.frames)
	for i := 0; i < 5; i++ {
		frames.Flush()
	}
	if len(sink.frames) != rendered {
		t.Error("a tick fired after reset without an explicit start")
	}
	if s := loop.Session(); s.Phase() != PhaseIdle || s.Score() != 0 {
		t.Errorf("session changed after reset: phase=%v score=%d", s.Phase(), s.Score())
	}
}

func TestLoopIgnoresFramesFromEarlierRun(t *testing.T) {
	sched := &leakyScheduler{}
	sink := &recordingSink{}
	loop := NewLoop(quietSession(), sched, sink)

	loop.Start()
	loop.Session().field.add(Obstacle{X: 100, GroundY: DefaultParams().Physics.GroundY})
	firstRunFrame := sched.callbacks[0]
	firstRunFrame() // Collides
	loop.Reset()
	loop.Start()

	rendered := len(sink.frames)
	firstRunFrame() // Fires late, as a scheduler without working cancel would

	if got := loop.Session().Score(); got != 0 {
		t.Errorf("stale frame advanced the new run, score = %d", got)
	}
	if len(sink.frames) != rendered {
		t.Error("stale frame rendered")
	}
}

func TestLoopJumpOnlyWhileRunning(t *testing.T) {
	frames := core.NewFrameQueue()
	loop := NewLoop(quietSession(), frames, nil)

	if loop.Jump() {
		t.Error("Jump() while idle should be ignored")
	}
	loop.Start()
	if !loop.Jump() {
		t.Error("Jump() while running and grounded should succeed")
	}
	frames.Flush()
	if !loop.Session().Player().Airborne {
		t.Error("player should be airborne after jump and one tick")
	}
}

func TestSinkFunc(t *testing.T) {
	var got []string
	sink := SinkFunc(func(snap Snapshot) {
		got = append(got, snap.Phase.String())
	})
	loop := NewLoop(quietSession(), core.NewFrameQueue(), sink)
	loop.Start()

	if strings.Join(got, ",") != "idle,running" {
		t.Errorf("SinkFunc received %v", got)
	}
}
