package geom

import "math"

// Overlap reports whether the open intervals (aMin, aMax) and (bMin, bMax)
// share any point. Intervals that only touch at an endpoint do not overlap.
func Overlap(aMin, aMax, bMin, bMax float64) bool {
	return aMin < bMax && bMin < aMax
}

// Overlaps reports whether two rectangles overlap on both axes.
// Court and net contact are both answered by this one test.
func (r Rect) Overlaps(o Rect) bool {
	return Overlap(r.Min.X, r.Max.X, o.Min.X, o.Max.X) &&
		Overlap(r.Min.Y, r.Max.Y, o.Min.Y, o.Max.Y)
}

// Contains reports whether o lies inside r. Shared edges count as inside.
func (r Rect) Contains(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Max.X <= r.Max.X &&
		o.Min.Y >= r.Min.Y && o.Max.Y <= r.Max.Y
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Box returns the bounding box of a circle.
func Box(center Vec2, radius float64) Rect {
	return Rect{
		Min: Vec2{center.X - radius, center.Y - radius},
		Max: Vec2{center.X + radius, center.Y + radius},
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
