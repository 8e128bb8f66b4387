package key

import "fmt"

// Event is a captured key press as reported by an input backend.
//
// Backends may report any combination of modifiers in Mods; a chord only
// matches when Mods holds exactly its single modifier.
type Event struct {
	// Code identifies the key pressed.
	Code Code

	// Mods contains the active modifier keys.
	Mods ModMask
}

// NewEvent creates a captured key event.
func NewEvent(code Code, mods ModMask) Event {
	return Event{Code: code, Mods: mods}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods ModMask) Event {
	return Event{Code: Char(r), Mods: mods}
}

// NewNamedEvent creates a key event for a named key.
func NewNamedEvent(k Key, mods ModMask) Event {
	return Event{Code: Named(k), Mods: mods}
}

// IsValid reports whether the event carries a key.
func (e Event) IsValid() bool {
	return e.Code.IsValid()
}

// Chord returns the chord for this event. It reports false when the event
// holds no key or more than one modifier.
func (e Event) Chord() (Chord, bool) {
	if !e.Code.IsValid() {
		return Chord{}, false
	}
	mod, ok := e.Mods.Modifier()
	if !ok {
		return Chord{}, false
	}
	return NewChord(e.Code, mod), true
}

// String returns a readable form like "Control+Shift+c".
func (e Event) String() string {
	if e.Mods == MaskNone {
		return e.Code.String()
	}
	return e.Mods.String() + "+" + e.Code.String()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Code: %#v, Mods: %q}", e.Code, e.Mods.String())
}
