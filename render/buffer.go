package render

import "github.com/lixenwraith/pong/vmath"

// Canvas is a row-major packed-RGB pixel buffer, origin top-left
// Every write is an opaque overwrite; writes outside the buffer are clipped
type Canvas struct {
	pixels []uint32
	width  int
	height int
}

// NewCanvas allocates a black canvas with the specified dimensions
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		pixels: make([]uint32, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Pixels exposes the backing buffer for presentation, aliasing is intentional
func (c *Canvas) Pixels() []uint32 { return c.pixels }

// Bounds returns the drawable rect
func (c *Canvas) Bounds() vmath.Rect {
	return vmath.Rect{Width: c.width, Height: c.height}
}

// Clear resets all pixels to black using exponential copy
func (c *Canvas) Clear() {
	c.Fill(RGBBlack)
}

// Fill sets every pixel to color using exponential copy
func (c *Canvas) Fill(color RGB) {
	if len(c.pixels) == 0 {
		return
	}
	c.pixels[0] = color.Pack()
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
}

// inBounds returns true if in canvas bounds
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// SetPixel writes one pixel, no-op outside the canvas
func (c *Canvas) SetPixel(x, y int, color RGB) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = color.Pack()
}

// At returns the pixel color, black outside the canvas
func (c *Canvas) At(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	return Unpack(c.pixels[y*c.width+x])
}

// FillRect paints the clipped intersection of r with the canvas
func (c *Canvas) FillRect(r vmath.Rect, color RGB) {
	r = c.Bounds().Intersect(r)
	if r.Empty() {
		return
	}
	packed := color.Pack()
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := c.pixels[y*c.width+r.X : y*c.width+r.X+r.Width]
		for i := range row {
			row[i] = packed
		}
	}
}
