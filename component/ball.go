package component

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/vmath"
)

// Ball is the moving disc; Position is its center, velocities in pixels per second
type Ball struct {
	Position  vmath.Position
	VelocityX float64
	VelocityY float64
	Radius    float64
}

// ScreenCenter is where the ball serves from
var ScreenCenter = vmath.Position{
	X: constant.ScreenHorizontalCenter,
	Y: constant.ScreenVerticalCenter,
}

// NewBall returns a ball at screen center heading down-right
func NewBall() Ball {
	return Ball{
		Position:  ScreenCenter,
		VelocityX: constant.BallSpeed,
		VelocityY: constant.BallSpeed,
		Radius:    constant.BallRadius,
	}
}
