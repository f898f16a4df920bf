package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(12, 12)

	if inner.X != 34 || inner.Y != 6 {
		t.Errorf("Centered() origin = (%d, %d), expected (34, 6)", inner.X, inner.Y)
	}
	if inner.W != 12 || inner.H != 12 {
		t.Errorf("Centered() size = %dx%d, expected 12x12", inner.W, inner.H)
	}

	// Larger than the container: origin goes negative, size is kept
	big := NewRect(0, 0, 10, 10).Centered(14, 14)
	if big.X != -2 || big.Y != -2 {
		t.Errorf("Centered() oversized origin = (%d, %d), expected (-2, -2)", big.X, big.Y)
	}
}
