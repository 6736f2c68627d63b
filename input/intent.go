package input

import "github.com/lixenwraith/thingmaker/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit     // q, Esc, Ctrl+C
	IntentPause    // p
	IntentActivate // tier hotkey
	IntentClick    // primary mouse press, resolved against the board by the loop
	IntentResize   // terminal resize
)

// Intent is one decoded input event
type Intent struct {
	Type IntentType
	Kind engine.Kind // IntentActivate
	X, Y int         // IntentClick
}
