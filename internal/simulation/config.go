// Package simulation provides configuration for the rally simulation.
// Court dimensions, physics constants and input ranges can be loaded from a
// JSON file so the feel of the game can be tuned without rebuilding.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/tennisfortwo/internal/core/geom"
)

var (
	// ErrInvalidGeometry is returned when the court, net or field are degenerate
	// or the net is not contained by the court.
	ErrInvalidGeometry = errors.New("invalid court geometry")
	// ErrInvalidPhysics is returned for non-positive speeds, gravity or step sizes.
	ErrInvalidPhysics = errors.New("invalid physics constants")
	// ErrInvalidInput is returned for an empty aim range or missing key bindings.
	ErrInvalidInput = errors.New("invalid input ranges")
)

// Config holds all simulation rules for a match
type Config struct {
	Court    CourtConfig    `json:"court"`
	Physics  PhysicsConfig  `json:"physics"`
	Input    InputConfig    `json:"input"`
	Controls ControlsConfig `json:"controls"`
}

// CourtConfig describes the field and the court drawn inside it
type CourtConfig struct {
	Width     float64 `json:"width"`      // Field width in pixels
	Height    float64 `json:"height"`     // Field height in pixels
	LineFrac  float64 `json:"line_frac"`  // Buffer around the court as a fraction of the field
	LineThick float64 `json:"line_thick"` // Thickness of the court surface and net
}

// PhysicsConfig defines ball motion
type PhysicsConfig struct {
	BallRadius    float64 `json:"ball_radius"`    // pixels
	BallSpeed     float64 `json:"ball_speed"`     // pixels / second off the racket
	Gravity       float64 `json:"gravity"`        // pixels / second^2
	AirResistance float64 `json:"air_resistance"` // 1 / second
	MaxStep       float64 `json:"max_step"`       // Longest integration sub-step, seconds
	MaxDelta      float64 `json:"max_delta"`      // Longest accepted tick, seconds
}

// InputConfig defines the aim range and steering speed. The right side uses
// the mirror of [Min, Max] through 180 degrees.
type InputConfig struct {
	Min        float64 `json:"min"`         // degrees
	Max        float64 `json:"max"`         // degrees
	Rate       float64 `json:"rate"`        // degrees / second
	LeftStart  float64 `json:"left_start"`  // Left aim at the start of a rally
	RightStart float64 `json:"right_start"` // Right aim at the start of a rally
}

// ControlsConfig names the keys for each side
type ControlsConfig struct {
	Left  SideControls `json:"left"`
	Right SideControls `json:"right"`
}

// SideControls names the raise, lower and strike keys of one player
type SideControls struct {
	Raise  string `json:"raise"`
	Lower  string `json:"lower"`
	Strike string `json:"strike"`
}

// DefaultConfig returns the classic Tennis for Two setup
func DefaultConfig() *Config {
	width := 800.0
	return &Config{
		Court: CourtConfig{
			Width:     width,
			Height:    400,
			LineFrac:  0.1,
			LineThick: 5,
		},
		Physics: PhysicsConfig{
			BallRadius:    5,
			BallSpeed:     0.6 * width,
			Gravity:       0.3 * width,
			AirResistance: 0.4,
			MaxStep:       1.0 / 60.0,
			MaxDelta:      0.25,
		},
		Input: InputConfig{
			Min:        -15,
			Max:        55,
			Rate:       150,
			LeftStart:  0,
			RightStart: 180,
		},
		Controls: ControlsConfig{
			Left:  SideControls{Raise: "W", Lower: "S", Strike: "D"},
			Right: SideControls{Raise: "Up", Lower: "Down", Strike: "Left"},
		},
	}
}

// LoadConfig loads simulation config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("simulation config %s: %w", path, err)
	}

	return config, nil
}

// Geometry is the immutable court layout derived from a CourtConfig.
type Geometry struct {
	Field geom.Rect // Overall playable extent
	Court geom.Rect // Surface the ball bounces on
	Net   geom.Rect // Barrier at the midline
	Serve geom.Vec2 // Ball rest position at the start of a rally
}

// Midline returns the x-coordinate separating the two halves.
func (g Geometry) Midline() float64 {
	return g.Court.CenterX()
}

// Geometry derives the field, court, net and serve spot.
func (c CourtConfig) Geometry() Geometry {
	w, h := c.Width, c.Height
	court := geom.NewRect(
		c.LineFrac*w,
		(1-c.LineFrac)*h-c.LineThick,
		(1-c.LineFrac)*w,
		(1-c.LineFrac)*h,
	)
	net := geom.NewRect(
		w/2-c.LineThick/2,
		h*(1-2*c.LineFrac)-2*c.LineThick,
		w/2+c.LineThick/2,
		h*(1-c.LineFrac)-2*c.LineThick,
	)
	return Geometry{
		// The ball is out once it passes either end of the court.
		Field: geom.NewRect(court.Min.X, 0, court.Max.X, h),
		Court: court,
		Net:   net,
		Serve: geom.Vec2{X: c.LineFrac * w, Y: (1-c.LineFrac)*h - 3*c.LineThick},
	}
}

// Validate checks the config and returns a wrapped sentinel error describing
// the first problem found.
func (c *Config) Validate() error {
	if err := c.validateCourt(); err != nil {
		return err
	}
	if err := c.validatePhysics(); err != nil {
		return err
	}
	return c.validateInput()
}

func (c *Config) validateCourt() error {
	if !(c.Court.Width > 0) || !(c.Court.Height > 0) || !(c.Court.LineThick > 0) {
		return fmt.Errorf("%w: field size and line thickness must be positive", ErrInvalidGeometry)
	}
	if !(c.Court.LineFrac > 0) || !(c.Court.LineFrac < 0.5) {
		return fmt.Errorf("%w: line_frac %.3f must be in (0, 0.5)", ErrInvalidGeometry, c.Court.LineFrac)
	}

	g := c.Court.Geometry()
	if g.Court.Empty() || g.Net.Empty() || g.Field.Empty() {
		return fmt.Errorf("%w: court, net and field must have area", ErrInvalidGeometry)
	}
	if g.Net.Min.X <= g.Court.Min.X || g.Net.Max.X >= g.Court.Max.X {
		return fmt.Errorf("%w: net must lie strictly inside the court horizontally", ErrInvalidGeometry)
	}
	if g.Net.Height() <= g.Court.Height() {
		return fmt.Errorf("%w: net must be taller than the court surface", ErrInvalidGeometry)
	}
	if g.Net.Max.Y > g.Court.Max.Y {
		return fmt.Errorf("%w: net must not reach below the court", ErrInvalidGeometry)
	}
	if !g.Field.Contains(g.Court) || !g.Field.Contains(g.Net) {
		return fmt.Errorf("%w: field must contain the court and the net", ErrInvalidGeometry)
	}
	if !g.Field.ContainsPoint(g.Serve) {
		return fmt.Errorf("%w: serve spot lies outside the field", ErrInvalidGeometry)
	}
	if g.Serve.X >= g.Midline() {
		return fmt.Errorf("%w: serve spot must be on the left half", ErrInvalidGeometry)
	}
	if g.Serve.Y+c.Physics.BallRadius > g.Court.Min.Y {
		return fmt.Errorf("%w: ball at the serve spot touches the court", ErrInvalidGeometry)
	}
	return nil
}

func (c *Config) validatePhysics() error {
	p := c.Physics
	if !(p.BallRadius > 0) || !(p.BallSpeed > 0) || !(p.Gravity > 0) {
		return fmt.Errorf("%w: ball radius, speed and gravity must be positive", ErrInvalidPhysics)
	}
	if !(p.AirResistance >= 0) {
		return fmt.Errorf("%w: air resistance must not be negative", ErrInvalidPhysics)
	}
	if !(p.MaxStep > 0) || p.MaxStep > p.MaxDelta || math.IsInf(p.MaxDelta, 0) {
		return fmt.Errorf("%w: need 0 < max_step <= max_delta", ErrInvalidPhysics)
	}
	if p.AirResistance*p.MaxStep >= 1 {
		return fmt.Errorf("%w: air_resistance * max_step must stay below 1", ErrInvalidPhysics)
	}
	// One sub-step must not carry the ball across the net or the court strip.
	if reach := c.Court.LineThick + 2*p.BallRadius; p.BallSpeed*p.MaxStep >= reach {
		return fmt.Errorf("%w: ball_speed * max_step must stay below %.1f", ErrInvalidPhysics, reach)
	}
	return nil
}

func (c *Config) validateInput() error {
	in := c.Input
	if !(in.Min < in.Max) {
		return fmt.Errorf("%w: min %.1f must be below max %.1f", ErrInvalidInput, in.Min, in.Max)
	}
	if !(in.Rate > 0) {
		return fmt.Errorf("%w: rate must be positive", ErrInvalidInput)
	}
	if in.LeftStart < in.Min || in.LeftStart > in.Max {
		return fmt.Errorf("%w: left_start %.1f outside [%.1f, %.1f]", ErrInvalidInput, in.LeftStart, in.Min, in.Max)
	}
	if in.RightStart < 180-in.Max || in.RightStart > 180-in.Min {
		return fmt.Errorf("%w: right_start %.1f outside [%.1f, %.1f]", ErrInvalidInput, in.RightStart, 180-in.Max, 180-in.Min)
	}
	if !c.Controls.Left.complete() || !c.Controls.Right.complete() {
		return fmt.Errorf("%w: each side needs raise, lower and strike keys", ErrInvalidInput)
	}
	return nil
}

func (sc SideControls) complete() bool {
	return sc.Raise != "" && sc.Lower != "" && sc.Strike != ""
}
