package constants

// Panel Layout
const (
	// PanelWidth is the fixed card width including border
	PanelWidth = 30

	// PanelHeight fits title, amount, cost label, cost and button inside a border
	PanelHeight = 8

	// PanelGapX and PanelGapY separate cards in the wrapping grid
	PanelGapX = 1
	PanelGapY = 1

	// BoardPadding is the margin between screen edge and first card
	BoardPadding = 1

	// StatusBarHeight is reserved at the bottom of the screen
	StatusBarHeight = 1
)

// Status Bar Text
const (
	ModeTextRunning = " RUNNING "
	ModeTextPaused  = " PAUSED  "
)

// Palette, RGB triples converted to tcell colors by the view package
var (
	ColorBackground     = [3]int32{255, 255, 255}
	ColorPanel          = [3]int32{242, 242, 242}
	ColorPanelBorder    = [3]int32{190, 190, 190}
	ColorText           = [3]int32{0, 0, 0}
	ColorButton         = [3]int32{204, 204, 204}
	ColorButtonDisabled = [3]int32{217, 217, 217}
	ColorTextDisabled   = [3]int32{128, 128, 128}
	ColorStatusBar      = [3]int32{50, 50, 60}
	ColorStatusText     = [3]int32{200, 200, 200}
	ColorStatusPaused   = [3]int32{255, 180, 60}
)
