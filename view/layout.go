package view

import "github.com/lixenwraith/thingmaker/constants"

// Rect is an absolute screen rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o, zero-sized when they do not meet
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Columns returns how many fixed-width cards fit in width, at least 1
func Columns(width int) int {
	usable := width - 2*constants.BoardPadding + constants.PanelGapX
	cols := usable / (constants.PanelWidth + constants.PanelGapX)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// GridLayout places n fixed-size cards row-major in a wrapping grid
// Slots are stable per index so hidden cards keep their place
func GridLayout(width, n int) []Rect {
	cols := Columns(width)
	out := make([]Rect, n)
	for i := range out {
		col := i % cols
		row := i / cols
		out[i] = Rect{
			X: constants.BoardPadding + col*(constants.PanelWidth+constants.PanelGapX),
			Y: constants.BoardPadding + row*(constants.PanelHeight+constants.PanelGapY),
			W: constants.PanelWidth,
			H: constants.PanelHeight,
		}
	}
	return out
}
