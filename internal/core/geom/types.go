package geom

// Vec2 is a 2D vector in field coordinates. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Mul scales v by f.
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle given by its top-left (Min) and
// bottom-right (Max) corners.
type Rect struct {
	Min, Max Vec2
}

// NewRect builds a rectangle from its edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Min: Vec2{left, top}, Max: Vec2{right, bottom}}
}

// Width returns the horizontal span.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical span.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// CenterX returns the x-coordinate of the vertical midline.
func (r Rect) CenterX() float64 { return (r.Min.X + r.Max.X) / 2 }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }
