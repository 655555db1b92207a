package physics

import (
	"chosenoffset.com/tennisfortwo/internal/core/geom"
	"chosenoffset.com/tennisfortwo/internal/simulation"
)

// verdict collects which sides earned the point on one tick.
type verdict struct {
	left, right bool
}

func (v *verdict) award(side Side) {
	switch side {
	case Left:
		v.left = true
	case Right:
		v.right = true
	}
}

func (v verdict) decided() bool {
	return v.left || v.right
}

// winner resolves the verdict to a single side. If both sides somehow
// qualified on the same tick the left side takes the point, matching the
// strike tie-break.
func (v verdict) winner() Side {
	switch {
	case v.left:
		return Left
	case v.right:
		return Right
	default:
		return None
	}
}

// classifier checks the ball against the court, the net and the field, in
// that order. The first rule that awards a point ends the check.
type classifier struct {
	geo    simulation.Geometry
	radius float64
}

// classify applies bounce physics to b and returns the side that scored.
func (c classifier) classify(b *Ball) Side {
	var v verdict

	box := geom.Box(b.Position, c.radius)
	if box.Overlaps(c.geo.Court) {
		c.bounce(b, &v)
	}
	if !v.decided() && box.Overlaps(c.geo.Net) {
		// Whoever put the ball into the net loses the point.
		v.award(b.LastStriker.Opposite())
	}
	if !v.decided() {
		c.exit(b, &v)
	}

	return v.winner()
}

// bounce reflects the ball off the court surface and applies the bounce
// rules of the half it landed on.
func (c classifier) bounce(b *Ball, v *verdict) {
	b.Velocity.Y = -b.Velocity.Y
	// Rest the ball on the surface so one landing counts once.
	b.Position.Y = c.geo.Court.Min.Y - c.radius

	var half Side
	switch mid := c.geo.Midline(); {
	case b.Position.X < mid:
		half = Left
	case b.Position.X > mid:
		half = Right
	default:
		return
	}

	if b.LastStriker == half {
		// The striker failed to get the ball over the net.
		v.award(half.Opposite())
		return
	}
	b.Bounces++
	if b.Bounces >= 2 {
		// The receiver let it bounce twice.
		v.award(half.Opposite())
	}
}

// exit scores a ball whose centre left the field.
func (c classifier) exit(b *Ball, v *verdict) {
	p, field := b.Position, c.geo.Field
	switch {
	case p.X < field.Min.X:
		c.endExit(b, Left, v)
	case p.X > field.Max.X:
		c.endExit(b, Right, v)
	case p.Y < field.Min.Y:
		// Over the top is always the striker's fault.
		v.award(b.LastStriker.Opposite())
	case p.Y > field.Max.Y:
		if b.Bounces > 0 {
			v.award(b.LastStriker)
		} else {
			v.award(b.LastStriker.Opposite())
		}
	}
}

// endExit scores a ball that left past the end of owner's half.
func (c classifier) endExit(b *Ball, owner Side, v *verdict) {
	switch b.LastStriker {
	case owner.Opposite():
		if b.Bounces > 0 {
			// It landed in first and the owner never returned it.
			v.award(b.LastStriker)
		} else {
			// Clean miss of the court.
			v.award(owner)
		}
	case owner:
		// Hit out behind the striker's own baseline.
		v.award(owner.Opposite())
	}
}
