package render

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/vmath"
)

// DrawScene clears the canvas and paints both paddles then the ball
func DrawScene(c *Canvas, left, right *component.Paddle, ball *component.Ball) {
	c.Clear()
	DrawPaddle(c, left)
	DrawPaddle(c, right)
	DrawBall(c, ball)
}

// DrawPaddle fills the paddle rectangle and its score label
// The label sits a fifth of the way from the paddle toward screen center
func DrawPaddle(c *Canvas, p *component.Paddle) {
	c.FillRect(vmath.Rect{
		X:      int(p.Position.X - p.Width/2),
		Y:      int(p.Position.Y - p.Height/2),
		Width:  int(p.Width),
		Height: int(p.Height),
	}, RGBForeground)

	label := vmath.Position{
		X: float64(int(vmath.Lerp(p.Position.X, constant.ScreenHorizontalCenter, constant.ScoreLabelLerp))),
		Y: constant.ScoreLabelY,
	}
	DrawScore(c, label, constant.ScoreBlockSize, p.Score)
}

// DrawBall fills offsets (row, col) in [-r, r)^2 where row^2 + col^2 < r
// The test compares against r rather than r^2, so the visible disc has radius sqrt(r)
func DrawBall(c *Canvas, b *component.Ball) {
	r := int(b.Radius)
	baseX := int(b.Position.X)
	for row := -r; row < r; row++ {
		y := int(float64(row) + b.Position.Y)
		for col := -r; col < r; col++ {
			if float64(row*row+col*col) < b.Radius {
				c.SetPixel(baseX+col, y, RGBForeground)
			}
		}
	}
}

// DrawScore paints a digit as a 3x5 grid of blockSize squares centered on pos
// Digits without a glyph draw nothing
func DrawScore(c *Canvas, pos vmath.Position, blockSize, digit int) {
	glyph, ok := GlyphFor(digit)
	if !ok {
		return
	}

	originX := int(pos.X) - (blockSize*GlyphColumns)/2
	originY := int(pos.Y) - (blockSize*GlyphRows)/2

	x, y := originX, originY
	for i, cell := range glyph {
		if cell == 1 {
			c.FillRect(vmath.Rect{X: x, Y: y, Width: blockSize, Height: blockSize}, RGBForeground)
		}
		x += blockSize
		if (i+1)%GlyphColumns == 0 {
			y += blockSize
			x = originX
		}
	}
}
