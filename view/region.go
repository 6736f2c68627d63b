package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region is a rectangular area of a screen
// All coordinates are relative to the region's origin and clipped to its bounds
type Region struct {
	Screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int
}

// NewRegion covers the whole screen
func NewRegion(s tcell.Screen) Region {
	w, h := s.Size()
	return Region{Screen: s, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to parent, clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{Screen: r.Screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Contains reports whether absolute screen coordinates fall inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill paints every cell with a space in style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Text writes s starting at x, clipped at the right edge, returns columns written
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	start := x
	for _, ch := range s {
		if x >= r.W {
			break
		}
		r.Cell(x, y, ch, style)
		x += runewidth.RuneWidth(ch)
	}
	return x - start
}

// TextRight writes s flush against the right edge
func (r Region) TextRight(y int, s string, style tcell.Style) {
	r.Text(r.W-runewidth.StringWidth(s), y, s, style)
}

// Box draws a single-line border around the region edge, keeping existing content inside
func (r Region) Box(style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	r.Cell(0, 0, tcell.RuneULCorner, style)
	r.Cell(r.W-1, 0, tcell.RuneURCorner, style)
	r.Cell(0, r.H-1, tcell.RuneLLCorner, style)
	r.Cell(r.W-1, r.H-1, tcell.RuneLRCorner, style)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, tcell.RuneHLine, style)
		r.Cell(x, r.H-1, tcell.RuneHLine, style)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, tcell.RuneVLine, style)
		r.Cell(r.W-1, y, tcell.RuneVLine, style)
	}
}
