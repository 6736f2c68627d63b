package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/thingmaker/engine"
)

// Action names accepted in the [keys] config table besides tier identifiers
const (
	ActionPause = "pause"
	ActionQuit  = "quit"
	ActionNone  = "none"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// KeyEntry is what a bound rune does
type KeyEntry struct {
	Type IntentType
	Kind engine.Kind
}

// KeyTable maps printable runes to entries
type KeyTable struct {
	Runes map[rune]KeyEntry
}

// DefaultKeyTable binds 1-8 to the tiers in chain order, space to Thing, p and q
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{Runes: make(map[rune]KeyEntry, engine.KindCount+3)}
	for _, k := range engine.Kinds() {
		kt.Runes['1'+rune(k)] = KeyEntry{Type: IntentActivate, Kind: k}
	}
	kt.Runes[' '] = KeyEntry{Type: IntentActivate, Kind: engine.KindThing}
	kt.Runes['p'] = KeyEntry{Type: IntentPause}
	kt.Runes['q'] = KeyEntry{Type: IntentQuit}
	return kt
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{Runes: make(map[rune]KeyEntry, len(kt.Runes))}
	for r, e := range kt.Runes {
		out.Runes[r] = e
	}
	return out
}

// Hint returns the first key bound to activating k in display order, 0 if none
func (kt *KeyTable) Hint(k engine.Kind) rune {
	var best rune
	for r, e := range kt.Runes {
		if e.Type != IntentActivate || e.Kind != k || r == ' ' {
			continue
		}
		if best == 0 || r < best {
			best = r
		}
	}
	return best
}

// ApplyOverrides merges key-to-action bindings from config into a copy of kt
// Binding a key to "none" removes it
func (kt *KeyTable) ApplyOverrides(bindings map[string]string) (*KeyTable, error) {
	out := kt.Clone()

	for keyStr, actionName := range bindings {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}

		name := strings.ToLower(strings.TrimSpace(actionName))
		if name == ActionNone {
			delete(out.Runes, r)
			continue
		}

		entry, err := resolveAction(name)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		out.Runes[r] = entry
	}
	return out, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	switch name {
	case ActionPause:
		return KeyEntry{Type: IntentPause}, nil
	case ActionQuit:
		return KeyEntry{Type: IntentQuit}, nil
	}
	if k, ok := engine.KindByName(name); ok {
		return KeyEntry{Type: IntentActivate, Kind: k}, nil
	}
	return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
}
