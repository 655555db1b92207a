package geom

import (
	"math"
	"testing"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aMin, aMax, bMin, bMax float64
		expected               bool
	}{
		{"disjoint", 0, 1, 2, 3, false},
		{"touching", 0, 1, 1, 2, false},
		{"partial", 0, 2, 1, 3, true},
		{"nested", 0, 10, 4, 5, true},
		{"reversed order", 2, 3, 0, 2.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.aMin, tt.aMax, tt.bMin, tt.bMax); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	court := NewRect(80, 355, 720, 360)

	if !Box(Vec2{400, 352}, 5).Overlaps(court) {
		t.Error("Expected ball sinking into the court to overlap it")
	}
	if Box(Vec2{400, 350}, 5).Overlaps(court) {
		t.Error("Expected ball resting on the court surface not to overlap it")
	}
	if Box(Vec2{50, 357}, 5).Overlaps(court) {
		t.Error("Expected ball beside the court not to overlap it")
	}
}

func TestRectContains(t *testing.T) {
	field := NewRect(0, 0, 800, 400)
	if !field.Contains(NewRect(80, 355, 720, 360)) {
		t.Error("Expected court to be inside field")
	}
	if field.Contains(NewRect(-1, 0, 10, 10)) {
		t.Error("Expected rect crossing the left edge not to be contained")
	}
	if !field.ContainsPoint(Vec2{800, 400}) {
		t.Error("Expected corner point to be contained")
	}
}

func TestClampAndRadians(t *testing.T) {
	if got := Clamp(70, -15, 55); got != 55 {
		t.Errorf("Expected 55, got %v", got)
	}
	if got := Clamp(-20, -15, 55); got != -15 {
		t.Errorf("Expected -15, got %v", got)
	}
	if got := Radians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Expected pi, got %v", got)
	}
}

func TestRectEmpty(t *testing.T) {
	if !NewRect(10, 10, 10, 20).Empty() {
		t.Error("Expected zero-width rect to be empty")
	}
	if NewRect(0, 0, 1, 1).Empty() {
		t.Error("Expected unit rect not to be empty")
	}
}
