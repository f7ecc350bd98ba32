package vmath

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		name            string
		start, end, pct float64
		expected        float64
	}{
		{"start", 50, 270, 0, 50},
		{"end", 50, 270, 1, 270},
		{"score label left", 50, 270, 0.2, 94},
		{"score label right", 490, 270, 0.2, 446},
		{"extrapolate", 0, 10, 1.5, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.start, tt.end, tt.pct); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPositionTranslate(t *testing.T) {
	p := Position{X: 1, Y: 240}
	vx := -150.0
	got := p.Translate(vx, 0, 16)
	wantX := p.X + vx*(16.0/1000)
	if got.X != wantX || got.Y != 240 {
		t.Errorf("Expected (%v, 240), got (%v, %v)", wantX, got.X, got.Y)
	}
	if got.X >= 0 {
		t.Errorf("Expected ball past the left wall, got X=%v", got.X)
	}

	if same := p.Translate(150, 150, 0); same != p {
		t.Errorf("Expected zero elapsed to keep position, got %+v", same)
	}
}

func TestRectIntersect(t *testing.T) {
	screen := Rect{Width: 540, Height: 480}

	inside := Rect{X: 10, Y: 10, Width: 5, Height: 40}
	if got := screen.Intersect(inside); got != inside {
		t.Errorf("Expected %+v, got %+v", inside, got)
	}

	partial := Rect{X: -3, Y: 470, Width: 5, Height: 40}
	want := Rect{X: 0, Y: 470, Width: 2, Height: 10}
	if got := screen.Intersect(partial); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	outside := Rect{X: 600, Y: 0, Width: 5, Height: 5}
	if got := screen.Intersect(outside); !got.Empty() {
		t.Errorf("Expected empty intersection, got %+v", got)
	}

	if !screen.Contains(0, 0) || screen.Contains(540, 0) || screen.Contains(0, 480) {
		t.Error("Contains must be half-open on the far edges")
	}
}
