package physics

import (
	"time"

	"chosenoffset.com/tennisfortwo/internal/core/geom"
	"chosenoffset.com/tennisfortwo/internal/simulation"
)

// Controls is an immutable snapshot of the held player inputs.
type Controls uint8

const (
	LeftRaise Controls = 1 << iota
	LeftLower
	LeftStrike
	RightRaise
	RightLower
	RightStrike
)

// Has reports whether every control in c is held.
func (h Controls) Has(c Controls) bool {
	return h&c == c
}

// Aim holds both players' strike angles in degrees. Zero points right,
// 90 points up.
type Aim struct {
	Left  float64
	Right float64
}

// InputSample is the result of resolving one held-key snapshot. The strike
// flags are valid for the next tick only.
type InputSample struct {
	Aim         Aim
	LeftStrike  bool
	RightStrike bool
}

// Resolver turns held controls and elapsed time into aim angles.
// The right side's range is the left range mirrored through 180 degrees, and
// its raise control lowers the angle so both players raise toward the sky.
type Resolver struct {
	Min  float64 // degrees
	Max  float64 // degrees
	Rate float64 // degrees / second
}

// NewResolver builds a resolver from the input config.
func NewResolver(cfg simulation.InputConfig) Resolver {
	return Resolver{Min: cfg.Min, Max: cfg.Max, Rate: cfg.Rate}
}

// LeftRange returns the legal aim range of the left player.
func (r Resolver) LeftRange() (lo, hi float64) {
	return r.Min, r.Max
}

// RightRange returns the legal aim range of the right player.
func (r Resolver) RightRange() (lo, hi float64) {
	return 180 - r.Max, 180 - r.Min
}

// Resolve applies held controls for the elapsed duration to prev.
// It has no side effects.
func (r Resolver) Resolve(prev Aim, held Controls, elapsed time.Duration) InputSample {
	if elapsed < 0 {
		elapsed = 0
	}
	step := elapsed.Seconds() * r.Rate

	aim := prev
	if held.Has(LeftRaise) {
		aim.Left += step
	}
	if held.Has(LeftLower) {
		aim.Left -= step
	}
	if held.Has(RightRaise) {
		aim.Right -= step
	}
	if held.Has(RightLower) {
		aim.Right += step
	}

	lo, hi := r.LeftRange()
	aim.Left = geom.Clamp(aim.Left, lo, hi)
	lo, hi = r.RightRange()
	aim.Right = geom.Clamp(aim.Right, lo, hi)

	return InputSample{
		Aim:         aim,
		LeftStrike:  held.Has(LeftStrike),
		RightStrike: held.Has(RightStrike),
	}
}
