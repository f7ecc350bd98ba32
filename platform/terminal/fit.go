package terminal

import (
	"github.com/lixenwraith/pong/render"
)

// Fitting maps terminal cells onto a source pixel buffer
// Subpixel (u, v) covers source pixels [u*Scale, (u+1)*Scale) on each axis, at least one
type Fitting struct {
	SrcWidth, SrcHeight int
	Scale               float64
	OffsetX, OffsetY    int // in cells and subpixel rows respectively
	Cols, SubRows       int // drawn extent
}

// Fit scales a width x height buffer into cols x rows cells, two subpixels per cell vertically
func Fit(width, height, cols, rows int) Fitting {
	f := Fitting{SrcWidth: width, SrcHeight: height}
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return f
	}

	subRows := rows * 2
	f.Scale = max(float64(width)/float64(cols), float64(height)/float64(subRows))

	f.Cols = min(cols, ceilDiv(width, f.Scale))
	f.SubRows = min(subRows, ceilDiv(height, f.Scale))
	f.OffsetX = (cols - f.Cols) / 2
	f.OffsetY = (subRows - f.SubRows) / 2
	return f
}

func ceilDiv(n int, scale float64) int {
	v := float64(n) / scale
	i := int(v)
	if float64(i) < v {
		i++
	}
	return i
}

// Cell returns the top and bottom subpixel colors for a terminal cell
// inside is false when the cell lies in the letterbox margin
func (f Fitting) Cell(pixels []uint32, cx, cy int) (top, bottom render.RGB, inside bool) {
	u := cx - f.OffsetX
	if u < 0 || u >= f.Cols {
		return render.RGBBlack, render.RGBBlack, false
	}
	vTop := cy*2 - f.OffsetY
	vBottom := vTop + 1
	if vBottom < 0 || vTop >= f.SubRows {
		return render.RGBBlack, render.RGBBlack, false
	}
	return f.subpixel(pixels, u, vTop), f.subpixel(pixels, u, vBottom), true
}

// subpixel max-pools the source region under subpixel (u, v), black outside the drawn extent
func (f Fitting) subpixel(pixels []uint32, u, v int) render.RGB {
	if v < 0 || v >= f.SubRows {
		return render.RGBBlack
	}
	x0, x1 := f.span(u, f.SrcWidth)
	y0, y1 := f.span(v, f.SrcHeight)

	c := render.RGBBlack
	for y := y0; y < y1; y++ {
		row := pixels[y*f.SrcWidth : y*f.SrcWidth+f.SrcWidth]
		for x := x0; x < x1; x++ {
			if row[x] != 0 {
				c = render.Max(c, render.Unpack(row[x]))
			}
		}
	}
	return c
}

func (f Fitting) span(i, limit int) (int, int) {
	lo := int(float64(i) * f.Scale)
	hi := int(float64(i+1) * f.Scale)
	if hi <= lo {
		hi = lo + 1
	}
	return min(lo, limit), min(hi, limit)
}
