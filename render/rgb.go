package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pong/constant"
)

// RGB is an 8-bit per channel color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}

	// RGBForeground is the single drawing color for paddles, ball and score
	RGBForeground = mustParseHex(constant.ForegroundHex)
)

func mustParseHex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// Pack encodes the color as 0x00RRGGBB, the layout of an RGB888 surface
func (c RGB) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack decodes a 0x00RRGGBB pixel, ignoring the top byte
func Unpack(p uint32) RGB {
	return RGB{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

// Max returns per-channel maximum
func Max(c, src RGB) RGB {
	return RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}
}
