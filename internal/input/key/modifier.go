package key

import (
	"fmt"
	"strings"
)

// Modifier is the single modifier key carried by a chord.
//
// A chord holds at most one modifier. Combinations such as Control+Shift
// cannot be expressed in the chord grammar.
type Modifier uint8

const (
	// ModNone indicates no modifier.
	ModNone Modifier = iota
	// ModShift indicates the Shift key.
	ModShift
	// ModControl indicates the Control key.
	ModControl
	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt
	// ModSuper indicates the Super key.
	ModSuper
	// ModHyper indicates the Hyper key.
	ModHyper
	// ModMeta indicates the Meta key.
	ModMeta

	modCount
)

// modifierNames holds the spellings for each modifier: the config token
// (also the Full display word), the abbreviation, and the display glyph.
var modifierNames = [modCount]struct {
	token  string
	abbrev string
	symbol string
}{
	ModNone:    {"", "", ""},
	ModShift:   {"Shift", "Shift", "⇧"},
	ModControl: {"Control", "Ctrl", "^"},
	ModAlt:     {"Alternate", "Alt", "⌥"},
	ModSuper:   {"Super", "Super", "❖"},
	ModHyper:   {"Hyper", "Hyper", "⎈"},
	ModMeta:    {"Meta", "Meta", "⌘"},
}

// modifierNameMap maps modifier tokens (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"shift":     ModShift,
	"control":   ModControl,
	"ctrl":      ModControl,
	"alt":       ModAlt,
	"alternate": ModAlt,
	"super":     ModSuper,
	"hyper":     ModHyper,
	"meta":      ModMeta,
}

// SupportedModifiers lists the accepted modifier tokens for error messages.
const SupportedModifiers = "Shift, Control (Ctrl), Alt (Alternate), Super, Hyper, Meta"

// ModifierFromName returns the Modifier for a token (case-insensitive).
func ModifierFromName(name string) (Modifier, bool) {
	m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// IsValid reports whether m is one of the defined modifiers.
func (m Modifier) IsValid() bool {
	return m < modCount
}

// String returns the config token, e.g. "Control". ModNone is "".
func (m Modifier) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Modifier(%d)", m)
	}
	return modifierNames[m].token
}

// Abbrev returns the abbreviated name, e.g. "Ctrl".
func (m Modifier) Abbrev() string {
	if !m.IsValid() {
		return m.String()
	}
	return modifierNames[m].abbrev
}

// Symbol returns the display glyph, e.g. "^" for Control.
func (m Modifier) Symbol() string {
	if !m.IsValid() {
		return "?"
	}
	return modifierNames[m].symbol
}

// Mask returns the modifier as a single-bit mask.
func (m Modifier) Mask() ModMask {
	if m == ModNone || !m.IsValid() {
		return MaskNone
	}
	return MaskShift << (m - ModShift)
}

// ModMask is the set of modifier keys held during a captured key event.
// Input backends report combinations; chords only ever use one bit.
type ModMask uint8

const (
	// MaskNone indicates no modifiers.
	MaskNone ModMask = 0
	// MaskShift indicates the Shift key.
	MaskShift ModMask = 1 << iota
	// MaskControl indicates the Control key.
	MaskControl
	// MaskAlt indicates the Alt key.
	MaskAlt
	// MaskSuper indicates the Super key.
	MaskSuper
	// MaskHyper indicates the Hyper key.
	MaskHyper
	// MaskMeta indicates the Meta key.
	MaskMeta
)

// Has returns true if m contains the specified modifiers.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod == mod && mod != MaskNone
}

// With returns a new mask with the specified modifiers added.
func (m ModMask) With(mod ModMask) ModMask {
	return m | mod
}

// Without returns a new mask with the specified modifiers removed.
func (m ModMask) Without(mod ModMask) ModMask {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m ModMask) IsEmpty() bool {
	return m == MaskNone
}

// Modifier returns the single modifier held in m. It reports false when
// m holds more than one modifier.
func (m ModMask) Modifier() (Modifier, bool) {
	if m == MaskNone {
		return ModNone, true
	}
	for mod := ModShift; mod < modCount; mod++ {
		if m == mod.Mask() {
			return mod, true
		}
	}
	return ModNone, false
}

// String returns a human-readable representation like "Control+Alt".
func (m ModMask) String() string {
	if m == MaskNone {
		return ""
	}

	var parts []string
	for mod := ModShift; mod < modCount; mod++ {
		if m.Has(mod.Mask()) {
			parts = append(parts, mod.String())
		}
	}
	return strings.Join(parts, "+")
}
