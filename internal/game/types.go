package game

import (
	"fmt"
	"time"

	"chosenoffset.com/tennisfortwo/internal/physics"
	"chosenoffset.com/tennisfortwo/internal/render"
	"chosenoffset.com/tennisfortwo/internal/simulation"
)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Clock is the monotonic time source the driver samples each frame.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock; time.Now carries a monotonic reading.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Bindings maps each player's controls to keys.
type Bindings struct {
	LeftRaise, LeftLower, LeftStrike    render.Key
	RightRaise, RightLower, RightStrike render.Key
}

// NewBindings resolves the key names of a controls config.
func NewBindings(cfg simulation.ControlsConfig) (Bindings, error) {
	var b Bindings
	var err error
	lookup := func(name string) render.Key {
		k, ok := render.KeyByName(name)
		if !ok && err == nil {
			err = fmt.Errorf("%w: unknown key %q", simulation.ErrInvalidInput, name)
		}
		return k
	}

	b.LeftRaise = lookup(cfg.Left.Raise)
	b.LeftLower = lookup(cfg.Left.Lower)
	b.LeftStrike = lookup(cfg.Left.Strike)
	b.RightRaise = lookup(cfg.Right.Raise)
	b.RightLower = lookup(cfg.Right.Lower)
	b.RightStrike = lookup(cfg.Right.Strike)
	return b, err
}

// Held snapshots the bound keys that are currently down.
func (b Bindings) Held(input render.InputManager) physics.Controls {
	var held physics.Controls
	pairs := []struct {
		key     render.Key
		control physics.Controls
	}{
		{b.LeftRaise, physics.LeftRaise},
		{b.LeftLower, physics.LeftLower},
		{b.LeftStrike, physics.LeftStrike},
		{b.RightRaise, physics.RightRaise},
		{b.RightLower, physics.RightLower},
		{b.RightStrike, physics.RightStrike},
	}
	for _, p := range pairs {
		if input.IsKeyPressed(p.key) {
			held |= p.control
		}
	}
	return held
}
