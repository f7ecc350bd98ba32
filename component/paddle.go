package component

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/vmath"
)

// Side identifies which wall a paddle defends
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Paddle is a vertical bat; Position is its center
type Paddle struct {
	Position vmath.Position
	Width    float64
	Height   float64
	Speed    float64 // pixels per second
	Score    int
}

// NewPaddle places a paddle at its wall offset, vertically centered
func NewPaddle(side Side) Paddle {
	x := float64(constant.PaddleDistanceFromWall)
	if side == SideRight {
		x = constant.ScreenWidth - constant.PaddleDistanceFromWall
	}
	return Paddle{
		Position: vmath.Position{X: x, Y: constant.ScreenVerticalCenter},
		Width:    constant.PaddleWidth,
		Height:   constant.PaddleHeight,
		Speed:    constant.PaddleSpeed,
	}
}

// Top returns the Y of the upper edge
func (p *Paddle) Top() float64 { return p.Position.Y - p.Height/2 }

// Bottom returns the Y of the lower edge
func (p *Paddle) Bottom() float64 { return p.Position.Y + p.Height/2 }

// Left returns the X of the left edge
func (p *Paddle) Left() float64 { return p.Position.X - p.Width/2 }

// Right returns the X of the right edge
func (p *Paddle) Right() float64 { return p.Position.X + p.Width/2 }

// SpansY reports whether y lies strictly between the top and bottom edges
func (p *Paddle) SpansY(y float64) bool {
	return y > p.Top() && y < p.Bottom()
}
