package physics

import (
	"errors"
	"fmt"
	"math"
	"time"

	"chosenoffset.com/tennisfortwo/internal/core/geom"
	"chosenoffset.com/tennisfortwo/internal/simulation"
)

// ErrInvalidDelta is returned by Tick for a negative, NaN or oversized time
// step. The tick is not applied and may be retried with a corrected value.
var ErrInvalidDelta = errors.New("invalid tick delta")

// Phase is the rally state.
type Phase int

const (
	// Serving: the ball rests at the serve spot waiting for the first strike.
	Serving Phase = iota
	// InPlay: the ball is moving and strikes, gravity and contacts apply.
	InPlay
	// Scored is only reported by the tick that decided a point; the match
	// itself goes straight back to Serving.
	Scored
)

func (p Phase) String() string {
	switch p {
	case Serving:
		return "serving"
	case InPlay:
		return "in play"
	case Scored:
		return "scored"
	default:
		return "unknown"
	}
}

// TickResult is what one call to Tick produced.
type TickResult struct {
	Position geom.Vec2
	Velocity geom.Vec2
	Scored   Side // None when no point was decided
	Phase    Phase
}

// Match is one session of play: both players' aim, the ball, the rally phase
// and the score. It is not safe for concurrent use; a single driver calls
// SampleInput and Tick in turn and readers look at it between ticks.
type Match struct {
	geo      simulation.Geometry
	input    simulation.InputConfig
	maxStep  float64
	maxDelta float64

	resolver   Resolver
	integrator integrator
	classifier classifier

	ball    Ball
	aim     Aim
	pending InputSample
	phase   Phase
	score   Score
	rallies int

	lastSample time.Time
	sampled    bool

	// OnScore is called after a point has been awarded and the rally reset.
	OnScore func(winner Side, score Score)
}

// NewMatch validates cfg and returns a match ready to serve.
func NewMatch(cfg *simulation.Config) (*Match, error) {
	if cfg == nil {
		return nil, errors.New("nil simulation config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configure match: %w", err)
	}

	geo := cfg.Court.Geometry()
	m := &Match{
		geo:      geo,
		input:    cfg.Input,
		maxStep:  cfg.Physics.MaxStep,
		maxDelta: cfg.Physics.MaxDelta,
		resolver: NewResolver(cfg.Input),
		integrator: integrator{
			speed:   cfg.Physics.BallSpeed,
			gravity: cfg.Physics.Gravity,
			drag:    cfg.Physics.AirResistance,
			midline: geo.Midline(),
		},
		classifier: classifier{
			geo:    geo,
			radius: cfg.Physics.BallRadius,
		},
	}
	m.ResetRally()
	return m, nil
}

// ResetRally puts the ball back at the serve spot and restores both aims.
// The score is kept. Calling it repeatedly has the same effect as once.
func (m *Match) ResetRally() {
	m.ball = Ball{Position: m.geo.Serve}
	m.aim = Aim{Left: m.input.LeftStart, Right: m.input.RightStart}
	m.pending = InputSample{Aim: m.aim}
	m.phase = Serving
	m.sampled = false
	m.lastSample = time.Time{}
}

// SampleInput resolves the held controls at time now. The aim moves by the
// time elapsed since the previous sample, so steering speed does not depend
// on how often Tick runs. The first sample of a rally has no elapsed time.
// Strike flags are kept for the next Tick only.
func (m *Match) SampleInput(held Controls, now time.Time) InputSample {
	var elapsed time.Duration
	if m.sampled {
		elapsed = now.Sub(m.lastSample)
	}
	m.lastSample = now
	m.sampled = true

	sample := m.resolver.Resolve(m.aim, held, elapsed)
	m.aim = sample.Aim
	m.pending = sample
	return sample
}

// RestartInputClock makes the next SampleInput behave like the first one of
// a rally, so time spent paused does not turn into steering.
func (m *Match) RestartInputClock() {
	m.sampled = false
}

// Tick advances the simulation by dt seconds. Steps longer than the
// configured max step are split into equal sub-steps; the rally stops at the
// first sub-step that decides a point.
func (m *Match) Tick(dt float64) (TickResult, error) {
	if math.IsNaN(dt) || dt < 0 || dt > m.maxDelta {
		return m.result(None), fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}

	steps := int(math.Ceil(dt / m.maxStep))
	if steps < 1 {
		steps = 1
	}
	h := dt / float64(steps)

	leftReq, rightReq := m.pending.LeftStrike, m.pending.RightStrike
	m.pending.LeftStrike, m.pending.RightStrike = false, false

	for i := 0; i < steps; i++ {
		struck := m.integrator.step(&m.ball, m.aim, leftReq, rightReq, h)
		leftReq, rightReq = false, false
		if struck != None {
			m.phase = InPlay
		}

		if winner := m.classifier.classify(&m.ball); winner != None {
			m.award(winner)
			res := m.result(winner)
			res.Phase = Scored
			return res, nil
		}
	}

	return m.result(None), nil
}

func (m *Match) award(winner Side) {
	m.score.award(winner)
	m.rallies++
	m.ResetRally()
	if m.OnScore != nil {
		m.OnScore(winner, m.score)
	}
}

func (m *Match) result(scored Side) TickResult {
	return TickResult{
		Position: m.ball.Position,
		Velocity: m.ball.Velocity,
		Scored:   scored,
		Phase:    m.phase,
	}
}

// Score returns the current score.
func (m *Match) Score() Score {
	return m.score
}

// Rallies returns the number of completed rallies.
func (m *Match) Rallies() int {
	return m.rallies
}

// Ball returns a copy of the ball state.
func (m *Match) Ball() Ball {
	return m.ball
}

// Aim returns both players' current aim.
func (m *Match) Aim() Aim {
	return m.aim
}

// Phase returns the rally phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Geometry returns the court layout.
func (m *Match) Geometry() simulation.Geometry {
	return m.geo
}

// BallRadius returns the ball radius in pixels.
func (m *Match) BallRadius() float64 {
	return m.classifier.radius
}

// Resolver returns the input resolver, for its aim ranges.
func (m *Match) Resolver() Resolver {
	return m.resolver
}
