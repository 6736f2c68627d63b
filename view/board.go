package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/thingmaker/constants"
	"github.com/lixenwraith/thingmaker/engine"
	"github.com/lixenwraith/thingmaker/input"
)

// Panel rows inside the border
const (
	rowLabel = iota
	rowAmount
	rowCostTitle
	rowCost
	_
	rowButton
)

// Board is the grid of tier panels
// It owns the one-way reveal latch: a panel shown once stays shown
type Board struct {
	theme Theme
	keys  *input.KeyTable

	revealed [engine.KindCount]bool

	// Layout of the last Render, used for hit testing
	width   int
	height  int
	panels  []Rect
	buttons [engine.KindCount]Rect
}

// NewBoard creates a board with only the free tier revealed
func NewBoard(keys *input.KeyTable) *Board {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	b := &Board{theme: DefaultTheme(), keys: keys}
	for _, k := range engine.Kinds() {
		if !engine.RuleFor(k).HasCost {
			b.revealed[k] = true
		}
	}
	return b
}

// Observe latches every tier that is affordable in snap, returns kinds newly revealed
func (b *Board) Observe(snap engine.Snapshot) []engine.Kind {
	var fresh []engine.Kind
	for _, k := range engine.Kinds() {
		if snap.Affordable[k] && !b.revealed[k] {
			b.revealed[k] = true
			fresh = append(fresh, k)
		}
	}
	return fresh
}

// Revealed reports whether k's panel is visible
func (b *Board) Revealed(k engine.Kind) bool {
	return k.Valid() && b.revealed[k]
}

// Layout computes panel and button rectangles for the board area above the status bar
// Buttons are clipped to that area so rows cut off by a short terminal cannot be clicked
func (b *Board) Layout(width, height int) {
	if width == b.width && height == b.height && b.panels != nil {
		return
	}
	b.width, b.height = width, height
	b.panels = GridLayout(width, int(engine.KindCount))
	area := Rect{W: width, H: height}
	for i, p := range b.panels {
		// Button row sits inside the border
		btn := Rect{X: p.X + 1, Y: p.Y + 1 + rowButton, W: p.W - 2, H: 1}
		b.buttons[i] = btn.Intersect(area)
	}
}

// HitTest resolves a click to the tier whose visible button contains it
func (b *Board) HitTest(x, y int) (engine.Kind, bool) {
	for _, k := range engine.Kinds() {
		if b.revealed[k] && b.buttons[k].Contains(x, y) {
			return k, true
		}
	}
	return 0, false
}

// Render paints the board and status bar, then shows the screen
func (b *Board) Render(s tcell.Screen, snap engine.Snapshot, bar StatusLine) {
	root := NewRegion(s)
	boardH := max(root.H-constants.StatusBarHeight, 0)
	b.Layout(root.W, boardH)

	root.Fill(b.theme.Background)

	board := root.Sub(0, 0, root.W, boardH)
	for _, k := range engine.Kinds() {
		if !b.revealed[k] {
			continue
		}
		p := b.panels[k]
		b.drawPanel(board.Sub(p.X, p.Y, p.W, p.H), k, snap)
	}

	bar.Draw(root.Sub(0, root.H-constants.StatusBarHeight, root.W, constants.StatusBarHeight), b.theme)
	s.Show()
}

func (b *Board) drawPanel(r Region, k engine.Kind, snap engine.Snapshot) {
	rule := engine.RuleFor(k)

	r.Fill(b.theme.Panel)
	r.Box(b.theme.PanelBorder)
	in := r.Inset(1)

	in.Text(0, rowLabel, rule.Label, b.theme.Panel.Bold(true))
	in.TextRight(rowAmount, FormatAmount(snap.Amounts[k]), b.theme.Panel)
	in.Text(0, rowCostTitle, "Cost:", b.theme.Panel)
	in.Text(0, rowCost, CostLabel(rule), b.theme.Panel)

	style := b.theme.ButtonDisabled
	if snap.Affordable[k] {
		style = b.theme.Button
	}
	caption := " " + rule.Caption + " "
	if hint := b.keys.Hint(k); hint != 0 {
		caption = fmt.Sprintf(" [%c] %s ", hint, rule.Caption)
	}
	in.Sub(0, rowButton, in.W, 1).Fill(style)
	in.Text(0, rowButton, caption, style)
}
