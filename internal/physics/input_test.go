package physics

import (
	"math"
	"testing"
	"time"

	"chosenoffset.com/tennisfortwo/internal/simulation"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestResolveSteering(t *testing.T) {
	r := NewResolver(simulation.DefaultConfig().Input)
	start := Aim{Left: 0, Right: 180}

	tests := []struct {
		name      string
		held      Controls
		elapsed   time.Duration
		wantLeft  float64
		wantRight float64
	}{
		{"nothing held", 0, time.Second, 0, 180},
		{"left raise", LeftRaise, 100 * time.Millisecond, 15, 180},
		{"left lower", LeftLower, 100 * time.Millisecond, -15, 180},
		{"left raise clamps", LeftRaise, time.Second, 55, 180},
		{"left lower clamps", LeftLower, time.Second, -15, 180},
		{"left both cancel", LeftRaise | LeftLower, 100 * time.Millisecond, 0, 180},
		{"right raise lowers angle", RightRaise, 100 * time.Millisecond, 0, 165},
		{"right lower raises angle", RightLower, 100 * time.Millisecond, 0, 195},
		{"right raise clamps", RightRaise, time.Second, 0, 125},
		{"negative elapsed ignored", LeftRaise | RightRaise, -time.Second, 0, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(start, tt.held, tt.elapsed)
			if !near(got.Aim.Left, tt.wantLeft) {
				t.Errorf("Expected left aim %v, got %v", tt.wantLeft, got.Aim.Left)
			}
			if !near(got.Aim.Right, tt.wantRight) {
				t.Errorf("Expected right aim %v, got %v", tt.wantRight, got.Aim.Right)
			}
		})
	}
}

func TestResolveStrikeFlags(t *testing.T) {
	r := NewResolver(simulation.DefaultConfig().Input)

	got := r.Resolve(Aim{Right: 180}, LeftStrike, 0)
	if !got.LeftStrike || got.RightStrike {
		t.Errorf("Expected only left strike, got %+v", got)
	}

	got = r.Resolve(Aim{Right: 180}, RightStrike|LeftRaise, 0)
	if got.LeftStrike || !got.RightStrike {
		t.Errorf("Expected only right strike, got %+v", got)
	}
}

func TestRanges(t *testing.T) {
	r := NewResolver(simulation.DefaultConfig().Input)
	if lo, hi := r.LeftRange(); lo != -15 || hi != 55 {
		t.Errorf("Expected left range [-15, 55], got [%v, %v]", lo, hi)
	}
	if lo, hi := r.RightRange(); lo != 125 || hi != 195 {
		t.Errorf("Expected right range [125, 195], got [%v, %v]", lo, hi)
	}
}

func TestSampleInputIsTimeBased(t *testing.T) {
	t0 := time.Unix(1000, 0)
	t1 := t0.Add(100 * time.Millisecond)

	busy := newTestMatch(t)
	busy.SampleInput(LeftRaise, t0)
	for i := 0; i < 5; i++ {
		if _, err := busy.Tick(1.0 / 60.0); err != nil {
			t.Fatal(err)
		}
	}
	busy.SampleInput(LeftRaise, t1)

	idle := newTestMatch(t)
	idle.SampleInput(LeftRaise, t0)
	idle.SampleInput(LeftRaise, t1)

	if !near(busy.Aim().Left, idle.Aim().Left) {
		t.Errorf("Expected same aim regardless of ticks, got %v and %v", busy.Aim().Left, idle.Aim().Left)
	}
	if !near(idle.Aim().Left, 15) {
		t.Errorf("Expected aim 15 after 100ms, got %v", idle.Aim().Left)
	}
}

func TestFirstSampleHasNoElapsedTime(t *testing.T) {
	m := newTestMatch(t)
	m.SampleInput(LeftRaise, time.Unix(5000, 0))
	if m.Aim().Left != 0 {
		t.Errorf("Expected first sample to leave aim at 0, got %v", m.Aim().Left)
	}
}

func TestStrikeDoesNotLatch(t *testing.T) {
	m := newTestMatch(t)
	now := time.Unix(0, 0)

	m.SampleInput(LeftStrike, now)
	m.SampleInput(0, now)
	if _, err := m.Tick(1.0 / 60.0); err != nil {
		t.Fatal(err)
	}
	if m.Phase() != Serving {
		t.Errorf("Expected strike released before the tick to be ignored, got phase %v", m.Phase())
	}

	m.SampleInput(LeftStrike, now)
	if _, err := m.Tick(1.0 / 60.0); err != nil {
		t.Fatal(err)
	}
	if m.Phase() != InPlay {
		t.Fatalf("Expected serve to be accepted, got phase %v", m.Phase())
	}

	// Make the ball eligible again without a fresh sample.
	m.ball.Velocity.X = -1
	before := m.ball
	if _, err := m.Tick(0); err != nil {
		t.Fatal(err)
	}
	if m.ball.Velocity != before.Velocity {
		t.Errorf("Expected no second strike from a stale flag, velocity %+v became %+v", before.Velocity, m.ball.Velocity)
	}
}
