package view

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/thingmaker/constants"
	"github.com/lixenwraith/thingmaker/engine"
	"github.com/lixenwraith/thingmaker/input"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func screenRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = screenRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.99, "0"},
		{9.999, "9"},
		{1234.5, "1,234"},
		{1e6, "1,000,000"},
		{-0.5, "-1"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCostLabel(t *testing.T) {
	if got := CostLabel(engine.RuleFor(engine.KindThing)); got != "Free" {
		t.Errorf("Thing cost = %q", got)
	}
	if got := CostLabel(engine.RuleFor(engine.KindThingMaker)); got != "10 Things" {
		t.Errorf("ThingMaker cost = %q", got)
	}
	if got := CostLabel(engine.RuleFor(engine.KindAI)); got != "1,000,000 Assemblers" {
		t.Errorf("AI cost = %q", got)
	}
}

func TestGridLayoutWraps(t *testing.T) {
	width := 2*constants.BoardPadding + 3*constants.PanelWidth + 2*constants.PanelGapX
	if Columns(width) != 3 {
		t.Fatalf("Columns(%d) = %d, want 3", width, Columns(width))
	}

	rects := GridLayout(width, 8)
	if rects[2].Y != rects[0].Y || rects[3].Y <= rects[0].Y {
		t.Errorf("expected wrap after 3 panels: %+v", rects[:4])
	}
	if rects[3].X != rects[0].X {
		t.Errorf("wrapped panel X = %d, want %d", rects[3].X, rects[0].X)
	}

	if Columns(5) != 1 {
		t.Error("narrow screen should still get one column")
	}
}

func TestBoardRevealLatch(t *testing.T) {
	b := NewBoard(nil)
	if !b.Revealed(engine.KindThing) {
		t.Fatal("free tier must start revealed")
	}
	if b.Revealed(engine.KindThingMaker) {
		t.Fatal("priced tier revealed before affordable")
	}

	e := engine.NewEngine()
	e.Set(engine.KindThing, 10)
	fresh := b.Observe(e.Snapshot())
	if len(fresh) != 1 || fresh[0] != engine.KindThingMaker {
		t.Errorf("Observe() = %v, want [thing_maker]", fresh)
	}

	// Spending below the threshold never hides it again
	e.Activate(engine.KindThingMaker)
	if fresh := b.Observe(e.Snapshot()); len(fresh) != 0 {
		t.Errorf("Observe() after spend = %v", fresh)
	}
	if !b.Revealed(engine.KindThingMaker) {
		t.Error("panel re-hidden after cost dropped below threshold")
	}
}

func TestBoardRender(t *testing.T) {
	s := newScreen(t, 100, 30)
	b := NewBoard(nil)

	e := engine.NewEngine()
	e.Set(engine.KindThing, 150.9)
	snap := e.Snapshot()
	b.Observe(snap)
	b.Render(s, snap, StatusLine{Policy: "strict", FPS: 60, GameSeconds: 75.4, Activations: 1234, Audio: "on"})

	text := screenText(s)
	for _, want := range []string{"Things", "150", "Free", "[1] Make Thing!", "Assemblers", "100 Things", "[3] Assemble Assembler"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q:\n%s", want, text)
		}
	}
	for _, hidden := range []string{"Assembly Lines", "Learning", "AGI"} {
		if strings.Contains(text, hidden) {
			t.Errorf("unrevealed panel %q drawn", hidden)
		}
	}

	bar := screenRow(s, 29)
	for _, want := range []string{"RUNNING", "strict", "1m15s", "bought 1,234", "sound on"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar missing %q: %q", want, bar)
		}
	}
}

func TestBoardButtonStyle(t *testing.T) {
	s := newScreen(t, 100, 30)
	b := NewBoard(nil)
	theme := DefaultTheme()

	e := engine.NewEngine()
	e.Set(engine.KindThing, 10)
	b.Observe(e.Snapshot())

	e.Set(engine.KindThing, 0)
	snap := e.Snapshot()
	b.Render(s, snap, StatusLine{})

	r := b.buttons[engine.KindThingMaker]
	_, _, style, _ := s.GetContent(r.X, r.Y)
	if style != theme.ButtonDisabled {
		t.Error("unaffordable revealed button not drawn disabled")
	}

	r = b.buttons[engine.KindThing]
	_, _, style, _ = s.GetContent(r.X, r.Y)
	if style != theme.Button {
		t.Error("free button not drawn enabled")
	}
}

func TestBoardHitTest(t *testing.T) {
	b := NewBoard(nil)
	b.Layout(100, 29)

	btn := b.buttons[engine.KindThing]
	if k, ok := b.HitTest(btn.X+2, btn.Y); !ok || k != engine.KindThing {
		t.Errorf("HitTest on Thing button = (%v, %v)", k, ok)
	}
	if _, ok := b.HitTest(btn.X+2, btn.Y-1); ok {
		t.Error("HitTest above button matched")
	}

	// Hidden panels are not clickable
	hidden := b.buttons[engine.KindAGI]
	if _, ok := b.HitTest(hidden.X, hidden.Y); ok {
		t.Error("HitTest matched an unrevealed panel")
	}
}

func TestBoardHitTestClippedToBoard(t *testing.T) {
	b := NewBoard(nil)

	// Thing button sits on row 7; at height 7 that row belongs to the status bar
	b.Layout(100, 7)
	btn := GridLayout(100, 1)[0]
	if _, ok := b.HitTest(btn.X+2, btn.Y+1+rowButton); ok {
		t.Error("HitTest matched a button row outside the board")
	}

	b.Layout(100, 8)
	if k, ok := b.HitTest(btn.X+2, btn.Y+1+rowButton); !ok || k != engine.KindThing {
		t.Errorf("HitTest inside board = (%v, %v)", k, ok)
	}

	// Narrow terminal trims the button to the screen width
	b.Layout(20, 29)
	if got := b.buttons[engine.KindThing]; got.X+got.W > 20 {
		t.Errorf("button %+v extends past width 20", got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 5}
	if got := a.Intersect(Rect{X: 5, Y: 3, W: 10, H: 10}); got != (Rect{X: 5, Y: 3, W: 5, H: 2}) {
		t.Errorf("overlap = %+v", got)
	}
	if got := a.Intersect(Rect{X: 20, Y: 0, W: 1, H: 1}); got.W != 0 || got.H != 0 {
		t.Errorf("disjoint = %+v, want empty", got)
	}
}

func TestBoardUsesCustomHints(t *testing.T) {
	keys, err := input.DefaultKeyTable().ApplyOverrides(map[string]string{"1": "none", "t": "thing"})
	if err != nil {
		t.Fatal(err)
	}
	s := newScreen(t, 100, 30)
	b := NewBoard(keys)
	b.Render(s, engine.NewEngine().Snapshot(), StatusLine{Paused: true})

	text := screenText(s)
	if !strings.Contains(text, "[t] Make Thing!") {
		t.Errorf("custom hint not shown:\n%s", text)
	}
	if !strings.Contains(text, "PAUSED") {
		t.Error("paused status not shown")
	}
}

func TestRegionClipping(t *testing.T) {
	s := newScreen(t, 10, 3)
	r := NewRegion(s).Sub(2, 1, 4, 1)

	n := r.Text(0, 0, "abcdefgh", tcell.StyleDefault)
	if n != 4 {
		t.Errorf("Text wrote %d columns, want 4", n)
	}
	if got := screenRow(s, 1); got != "  abcd    " {
		t.Errorf("row = %q", got)
	}
	if !r.Contains(5, 1) || r.Contains(6, 1) {
		t.Error("Contains bounds wrong")
	}
}
