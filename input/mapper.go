package input

import "github.com/gdamore/tcell/v2"

// Mapper decodes tcell events into intents using a key table
type Mapper struct {
	keys *KeyTable

	// buttonDown suppresses repeats while the primary button is held
	buttonDown bool
}

// NewMapper creates a mapper, nil selects DefaultKeyTable
func NewMapper(keys *KeyTable) *Mapper {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Mapper{keys: keys}
}

// Keys returns the active key table
func (m *Mapper) Keys() *KeyTable {
	return m.keys
}

// Map translates one event, IntentNone for anything unbound
func (m *Mapper) Map(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.mapKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !m.buttonDown {
			m.buttonDown = true
			return Intent{Type: IntentClick, X: x, Y: y}
		}
		if !pressed {
			m.buttonDown = false
		}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Mapper) mapKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyRune:
		entry, ok := m.keys.Runes[ev.Rune()]
		if !ok {
			return Intent{}
		}
		return Intent{Type: entry.Type, Kind: entry.Kind}
	}
	return Intent{}
}
