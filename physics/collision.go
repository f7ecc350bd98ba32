package physics

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
)

// Outcome reports the single event resolved by one UpdateBall step
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWallBounce
	OutcomePaddleBounce
	OutcomeLeftScored
	OutcomeRightScored
)

var outcomeNames = [...]string{
	OutcomeNone:         "none",
	OutcomeWallBounce:   "wall",
	OutcomePaddleBounce: "paddle",
	OutcomeLeftScored:   "left-scored",
	OutcomeRightScored:  "right-scored",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Scored reports whether the outcome ends the rally
func (o Outcome) Scored() bool {
	return o == OutcomeLeftScored || o == OutcomeRightScored
}

// UpdateBall integrates the ball and resolves at most one collision
// Checks run in order wall, goal, left paddle, right paddle; the first hit ends the step
// Collision uses the center point only: fast balls may tunnel and the disc may overlap a paddle
func UpdateBall(ball *component.Ball, left, right *component.Paddle, elapsedMillis float64) Outcome {
	ball.Position = ball.Position.Translate(ball.VelocityX, ball.VelocityY, elapsedMillis)

	if ball.Position.Y < 0 || ball.Position.Y > constant.ScreenHeight {
		ball.VelocityY = -ball.VelocityY
		return OutcomeWallBounce
	}

	if ball.Position.X < 0 {
		right.Score++
		resetRally(ball, left, right)
		return OutcomeRightScored
	}
	if ball.Position.X > constant.ScreenWidth {
		left.Score++
		resetRally(ball, left, right)
		return OutcomeLeftScored
	}

	if ball.Position.X < left.Right() && left.SpansY(ball.Position.Y) {
		ball.VelocityX = -ball.VelocityX
		return OutcomePaddleBounce
	}

	if ball.Position.X > right.Left() && right.SpansY(ball.Position.Y) {
		ball.VelocityX = -ball.VelocityX
		return OutcomePaddleBounce
	}

	return OutcomeNone
}

// resetRally recenters paddles and ball; velocity is kept so the serve continues the last direction
func resetRally(ball *component.Ball, left, right *component.Paddle) {
	left.Position.Y = constant.ScreenVerticalCenter
	right.Position.Y = constant.ScreenVerticalCenter
	ball.Position = component.ScreenCenter
}
