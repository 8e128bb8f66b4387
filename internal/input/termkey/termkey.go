// Package termkey converts tcell key events into key.Event values.
package termkey

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/internal/input/key"
)

// namedKeys maps tcell's non-control special keys. Control characters are
// handled by convertControl because tcell aliases several of them.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyUp:      key.KeyUp,
	tcell.KeyDown:    key.KeyDown,
	tcell.KeyLeft:    key.KeyLeft,
	tcell.KeyRight:   key.KeyRight,
	tcell.KeyHome:    key.KeyHome,
	tcell.KeyEnd:     key.KeyEnd,
	tcell.KeyPgUp:    key.KeyPageUp,
	tcell.KeyPgDn:    key.KeyPageDown,
	tcell.KeyInsert:  key.KeyInsert,
	tcell.KeyDelete:  key.KeyDelete,
	tcell.KeyBacktab: key.KeyBackTab,
	tcell.KeyPrint:   key.KeyPrintScreen,
	tcell.KeyPause:   key.KeyPause,
	tcell.KeyCenter:  key.KeyKeypadBegin,
}

// FromEvent converts a tcell key event. It reports false for keys that
// have no key.Code, such as KeyNUL variants tcell cannot attribute.
//
// Shift is dropped for printable runes since the rune already carries the
// case: Shift+q arrives as 'Q' and matches the chord "Q".
func FromEvent(ev *tcell.EventKey) (key.Event, bool) {
	if ev == nil {
		return key.Event{}, false
	}

	k := ev.Key()
	mods := ConvertMod(ev.Modifiers())

	if k == tcell.KeyRune {
		return key.NewEvent(key.Char(ev.Rune()), mods.Without(key.MaskShift)), true
	}
	if named, ok := namedKeys[k]; ok {
		return key.NewEvent(key.Named(named), mods), true
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF64 {
		return key.NewEvent(key.F(int(k-tcell.KeyF1)+1), mods), true
	}
	if code, extra, ok := convertControl(k); ok {
		return key.NewEvent(code, mods.With(extra)), true
	}
	return key.Event{}, false
}

// convertControl maps ASCII control keys. Tab, Enter, Backspace and Esc
// share codes with Ctrl+I, Ctrl+M, Ctrl+H and Ctrl+[; the named key wins.
func convertControl(k tcell.Key) (key.Code, key.ModMask, bool) {
	switch {
	case k == tcell.KeyEnter:
		return key.Named(key.KeyEnter), key.MaskNone, true
	case k == tcell.KeyTab:
		return key.Named(key.KeyTab), key.MaskNone, true
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return key.Named(key.KeyBackspace), key.MaskNone, true
	case k == tcell.KeyEscape:
		return key.Named(key.KeyEsc), key.MaskNone, true
	case k == tcell.KeyCtrlSpace:
		return key.Char(' '), key.MaskControl, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.Char('a' + rune(k-tcell.KeyCtrlA)), key.MaskControl, true
	}
	return key.NoKey, key.MaskNone, false
}

// ConvertMod converts tcell modifiers to a key.ModMask.
func ConvertMod(m tcell.ModMask) key.ModMask {
	var result key.ModMask
	if m&tcell.ModShift != 0 {
		result |= key.MaskShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.MaskControl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.MaskAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.MaskMeta
	}
	return result
}
