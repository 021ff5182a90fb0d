package collision

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint horizontally", NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10), false},
		{"disjoint vertically", NewRect(0, 0, 10, 10), NewRect(0, 11, 10, 10), false},
		{"contained", NewRect(0, 0, 100, 100), NewRect(10, 10, 5, 5), true},
		{"partial", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"touching right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), true},
		{"touching bottom edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), true},
		{"touching corner", NewRect(0, 0, 10, 10), NewRect(10, 10, 10, 10), true},
		{"just past corner", NewRect(0, 0, 10, 10), NewRect(10.01, 10.01, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestNewRectClampsNegativeExtents(t *testing.T) {
	r := NewRect(5, 5, -3, -1)
	if r.Width != 0 || r.Height != 0 {
		t.Errorf("Expected zero extents, got %vx%v", r.Width, r.Height)
	}
}

func TestTranslateAndScaled(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	moved := r.Translate(-4, 4)
	if moved.X != 6 || moved.Y != 24 {
		t.Errorf("Expected (6, 24), got (%v, %v)", moved.X, moved.Y)
	}
	if r.X != 10 {
		t.Fatalf("Translate mutated the receiver")
	}

	scaled := r.Scaled(0.5)
	if scaled.X != 10 || scaled.Y != 20 {
		t.Errorf("Scaled moved the origin to (%v, %v)", scaled.X, scaled.Y)
	}
	if scaled.Width != 50 || scaled.Height != 25 {
		t.Errorf("Expected 50x25, got %vx%v", scaled.Width, scaled.Height)
	}

	cx, cy := r.Center()
	if cx != 60 || cy != 45 {
		t.Errorf("Expected centre (60, 45), got (%v, %v)", cx, cy)
	}
}
