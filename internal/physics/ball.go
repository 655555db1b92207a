package physics

import (
	"math"

	"chosenoffset.com/tennisfortwo/internal/core/geom"
)

// Ball is the state of the ball during a rally.
type Ball struct {
	Position    geom.Vec2 // field coordinates, pixels
	Velocity    geom.Vec2 // pixels / second
	LastStriker Side
	Bounces     int // court contacts since the last strike
}

// integrator applies strikes, gravity and drag, then moves the ball.
type integrator struct {
	speed   float64
	gravity float64
	drag    float64
	midline float64
}

// strikeSide picks the player whose strike is accepted, or None.
// Left is checked first and wins a tie.
func (in integrator) strikeSide(b *Ball, leftReq, rightReq bool) Side {
	switch {
	case leftReq && b.Position.X < in.midline && b.Velocity.X <= 0:
		return Left
	case rightReq && b.Position.X > in.midline && b.Velocity.X >= 0:
		return Right
	default:
		return None
	}
}

// step advances b by dt and returns the side whose strike was accepted.
func (in integrator) step(b *Ball, aim Aim, leftReq, rightReq bool, dt float64) Side {
	struck := in.strikeSide(b, leftReq, rightReq)
	switch struck {
	case Left:
		in.strike(b, Left, aim.Left)
	case Right:
		in.strike(b, Right, aim.Right)
	default:
		if !b.Velocity.IsZero() {
			b.Velocity.Y += in.gravity * dt
		}
	}

	b.Velocity = b.Velocity.Mul(1 - in.drag*dt)
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	return struck
}

func (in integrator) strike(b *Ball, side Side, angle float64) {
	rad := geom.Radians(angle)
	// Up is negative y in field coordinates.
	b.Velocity = geom.Vec2{X: in.speed * math.Cos(rad), Y: -in.speed * math.Sin(rad)}
	b.LastStriker = side
	b.Bounces = 0
}
