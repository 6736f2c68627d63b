// Package view draws the resource board onto a tcell screen.
//
// Core abstraction is Region, a clipped rectangle of the screen. Drawing is immediate
// mode: the board keeps only the reveal latch and the last layout, and repaints every
// panel from an engine snapshot each time it is asked to render.
//
// Usage pattern:
//
//	board := view.NewBoard(keys)
//	board.Observe(eng.Snapshot())
//	board.Render(screen, snap, status)
//	if k, ok := board.HitTest(x, y); ok { ... }
package view
