package physics

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/input"
)

// UpdatePaddle moves a human paddle by Speed*elapsed in the pressed direction
// Movement is refused once the leading edge has reached the screen boundary,
// and a step never carries the edge past it
func UpdatePaddle(p *component.Paddle, pressed input.Key, elapsedMillis float64) {
	step := p.Speed * (elapsedMillis / 1000)

	switch pressed {
	case input.KeyUp:
		if p.Top() > 0 {
			p.Position.Y = max(p.Position.Y-step, p.Height/2)
		}
	case input.KeyDown:
		if p.Bottom() < constant.ScreenHeight {
			p.Position.Y = min(p.Position.Y+step, constant.ScreenHeight-p.Height/2)
		}
	}
}

// UpdateAIPaddle locks the paddle to the ball's height
func UpdateAIPaddle(p *component.Paddle, ball *component.Ball) {
	p.Position.Y = ball.Position.Y
}
