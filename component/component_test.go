package component

import (
	"testing"

	"github.com/lixenwraith/pong/constant"
)

func TestNewPaddle(t *testing.T) {
	left := NewPaddle(SideLeft)
	right := NewPaddle(SideRight)

	if left.Position.X != 50 {
		t.Errorf("Expected left paddle X=50, got %v", left.Position.X)
	}
	if right.Position.X != 490 {
		t.Errorf("Expected right paddle X=490, got %v", right.Position.X)
	}
	for _, p := range []Paddle{left, right} {
		if p.Position.Y != constant.ScreenVerticalCenter {
			t.Errorf("Expected paddle Y=%d, got %v", constant.ScreenVerticalCenter, p.Position.Y)
		}
		if p.Width != 5 || p.Height != 40 || p.Speed != 600 || p.Score != 0 {
			t.Errorf("Unexpected paddle dimensions: %+v", p)
		}
	}
}

func TestPaddleEdges(t *testing.T) {
	p := NewPaddle(SideLeft)

	if p.Top() != 220 || p.Bottom() != 260 {
		t.Errorf("Expected vertical extent [220,260], got [%v,%v]", p.Top(), p.Bottom())
	}
	if p.Left() != 47.5 || p.Right() != 52.5 {
		t.Errorf("Expected horizontal extent [47.5,52.5], got [%v,%v]", p.Left(), p.Right())
	}

	// Strict bounds on both edges
	if p.SpansY(220) || p.SpansY(260) {
		t.Error("SpansY must exclude the edges")
	}
	if !p.SpansY(240) {
		t.Error("SpansY must include the center")
	}
}

func TestNewBall(t *testing.T) {
	b := NewBall()
	if b.Position != ScreenCenter {
		t.Errorf("Expected ball at %+v, got %+v", ScreenCenter, b.Position)
	}
	if b.VelocityX != 150 || b.VelocityY != 150 || b.Radius != 30 {
		t.Errorf("Unexpected ball state: %+v", b)
	}
	if ScreenCenter.X != 270 || ScreenCenter.Y != 240 {
		t.Errorf("Expected screen center (270,240), got %+v", ScreenCenter)
	}
}

func TestSideString(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Errorf("Unexpected side names: %s %s", SideLeft, SideRight)
	}
}
