// Package physics is the rally engine: it steers both players' aim, moves the
// ball under gravity and drag, classifies court, net and field contacts and
// keeps the score. It owns all match state and is driven one tick at a time.
package physics

// Side identifies a player. None stands for "no side", for example before
// the first strike of a rally or on a tick where nobody scored.
type Side int

const (
	None Side = iota
	Left
	Right
)

// Opposite returns the other player. None has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Score is the running point count of a match.
type Score struct {
	Left  int
	Right int
}

// Total returns the number of points played.
func (s Score) Total() int {
	return s.Left + s.Right
}

// Of returns the points of one side.
func (s Score) Of(side Side) int {
	switch side {
	case Left:
		return s.Left
	case Right:
		return s.Right
	default:
		return 0
	}
}

func (s *Score) award(side Side) {
	switch side {
	case Left:
		s.Left++
	case Right:
		s.Right++
	}
}
