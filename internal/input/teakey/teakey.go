// Package teakey converts bubbletea key messages into key.Event values
// and chord sets into bubbles key bindings.
package teakey

import (
	"unicode"

	bubbleskey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/keybind/internal/input/key"
)

type namedKey struct {
	code key.Code
	mods key.ModMask
}

// specialKeys covers bubbletea's negative key types. The control range
// is handled by convertControl because bubbletea aliases it.
var specialKeys = map[tea.KeyType]namedKey{
	tea.KeySpace:    {key.Char(' '), key.MaskNone},
	tea.KeyUp:       {key.Named(key.KeyUp), key.MaskNone},
	tea.KeyDown:     {key.Named(key.KeyDown), key.MaskNone},
	tea.KeyLeft:     {key.Named(key.KeyLeft), key.MaskNone},
	tea.KeyRight:    {key.Named(key.KeyRight), key.MaskNone},
	tea.KeyHome:     {key.Named(key.KeyHome), key.MaskNone},
	tea.KeyEnd:      {key.Named(key.KeyEnd), key.MaskNone},
	tea.KeyPgUp:     {key.Named(key.KeyPageUp), key.MaskNone},
	tea.KeyPgDown:   {key.Named(key.KeyPageDown), key.MaskNone},
	tea.KeyDelete:   {key.Named(key.KeyDelete), key.MaskNone},
	tea.KeyInsert:   {key.Named(key.KeyInsert), key.MaskNone},
	tea.KeyShiftTab: {key.Named(key.KeyBackTab), key.MaskNone},

	tea.KeyCtrlUp:       {key.Named(key.KeyUp), key.MaskControl},
	tea.KeyCtrlDown:     {key.Named(key.KeyDown), key.MaskControl},
	tea.KeyCtrlLeft:     {key.Named(key.KeyLeft), key.MaskControl},
	tea.KeyCtrlRight:    {key.Named(key.KeyRight), key.MaskControl},
	tea.KeyCtrlHome:     {key.Named(key.KeyHome), key.MaskControl},
	tea.KeyCtrlEnd:      {key.Named(key.KeyEnd), key.MaskControl},
	tea.KeyCtrlPgUp:     {key.Named(key.KeyPageUp), key.MaskControl},
	tea.KeyCtrlPgDown:   {key.Named(key.KeyPageDown), key.MaskControl},
	tea.KeyShiftUp:      {key.Named(key.KeyUp), key.MaskShift},
	tea.KeyShiftDown:    {key.Named(key.KeyDown), key.MaskShift},
	tea.KeyShiftLeft:    {key.Named(key.KeyLeft), key.MaskShift},
	tea.KeyShiftRight:   {key.Named(key.KeyRight), key.MaskShift},
	tea.KeyShiftHome:    {key.Named(key.KeyHome), key.MaskShift},
	tea.KeyShiftEnd:     {key.Named(key.KeyEnd), key.MaskShift},

	tea.KeyCtrlShiftUp:    {key.Named(key.KeyUp), key.MaskControl | key.MaskShift},
	tea.KeyCtrlShiftDown:  {key.Named(key.KeyDown), key.MaskControl | key.MaskShift},
	tea.KeyCtrlShiftLeft:  {key.Named(key.KeyLeft), key.MaskControl | key.MaskShift},
	tea.KeyCtrlShiftRight: {key.Named(key.KeyRight), key.MaskControl | key.MaskShift},
	tea.KeyCtrlShiftHome:  {key.Named(key.KeyHome), key.MaskControl | key.MaskShift},
	tea.KeyCtrlShiftEnd:   {key.Named(key.KeyEnd), key.MaskControl | key.MaskShift},

	tea.KeyF1:  {key.F(1), key.MaskNone},
	tea.KeyF2:  {key.F(2), key.MaskNone},
	tea.KeyF3:  {key.F(3), key.MaskNone},
	tea.KeyF4:  {key.F(4), key.MaskNone},
	tea.KeyF5:  {key.F(5), key.MaskNone},
	tea.KeyF6:  {key.F(6), key.MaskNone},
	tea.KeyF7:  {key.F(7), key.MaskNone},
	tea.KeyF8:  {key.F(8), key.MaskNone},
	tea.KeyF9:  {key.F(9), key.MaskNone},
	tea.KeyF10: {key.F(10), key.MaskNone},
	tea.KeyF11: {key.F(11), key.MaskNone},
	tea.KeyF12: {key.F(12), key.MaskNone},
	tea.KeyF13: {key.F(13), key.MaskNone},
	tea.KeyF14: {key.F(14), key.MaskNone},
	tea.KeyF15: {key.F(15), key.MaskNone},
	tea.KeyF16: {key.F(16), key.MaskNone},
	tea.KeyF17: {key.F(17), key.MaskNone},
	tea.KeyF18: {key.F(18), key.MaskNone},
	tea.KeyF19: {key.F(19), key.MaskNone},
	tea.KeyF20: {key.F(20), key.MaskNone},
}

// teaKeys inverts specialKeys.
var teaKeys = func() map[namedKey]tea.KeyType {
	m := make(map[namedKey]tea.KeyType, len(specialKeys))
	for t, nk := range specialKeys {
		m[nk] = t
	}
	return m
}()

// FromKeyMsg converts a bubbletea key message. Pasted text and multi-rune
// input report false since they are not a single key press.
func FromKeyMsg(msg tea.KeyMsg) (key.Event, bool) {
	if msg.Paste {
		return key.Event{}, false
	}

	var alt key.ModMask
	if msg.Alt {
		alt = key.MaskAlt
	}

	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return key.Event{}, false
		}
		return key.NewRuneEvent(msg.Runes[0], alt), true
	}
	if special, ok := specialKeys[msg.Type]; ok {
		return key.NewEvent(special.code, special.mods.With(alt)), true
	}
	if code, mods, ok := convertControl(msg.Type); ok {
		return key.NewEvent(code, mods.With(alt)), true
	}
	return key.Event{}, false
}

// convertControl maps the ASCII control range. Enter, Tab, Esc and
// Backspace share codes with Ctrl+M, Ctrl+I, Ctrl+[ and Ctrl+?.
func convertControl(t tea.KeyType) (key.Code, key.ModMask, bool) {
	switch {
	case t == tea.KeyEnter:
		return key.Named(key.KeyEnter), key.MaskNone, true
	case t == tea.KeyTab:
		return key.Named(key.KeyTab), key.MaskNone, true
	case t == tea.KeyEsc:
		return key.Named(key.KeyEsc), key.MaskNone, true
	case t == tea.KeyBackspace:
		return key.Named(key.KeyBackspace), key.MaskNone, true
	case t == tea.KeyCtrlAt:
		return key.Char(' '), key.MaskControl, true
	case t >= tea.KeyCtrlA && t <= tea.KeyCtrlZ:
		return key.Char('a' + rune(t-tea.KeyCtrlA)), key.MaskControl, true
	}
	return key.NoKey, key.MaskNone, false
}

// ToKeyMsg returns the key message bubbletea delivers for c. It reports
// false for chords bubbletea cannot tell apart from another key, such as
// Control+i (Tab) or any Super, Hyper or Meta chord.
func ToKeyMsg(c key.Chord) (tea.KeyMsg, bool) {
	if !c.IsValid() {
		return tea.KeyMsg{}, false
	}

	mods := c.Modifier.Mask()
	msg := tea.KeyMsg{Alt: mods.Has(key.MaskAlt)}
	mods = mods.Without(key.MaskAlt)

	r := c.Code.Rune()
	switch {
	case c.Code.Kind() == key.KindChar && mods.IsEmpty() && r == ' ':
		msg.Type, msg.Runes = tea.KeySpace, []rune{' '}
	case c.Code.Kind() == key.KindChar && mods.IsEmpty() && unicode.IsPrint(r):
		msg.Type, msg.Runes = tea.KeyRunes, []rune{r}
	case c.Code.Kind() == key.KindChar && mods == key.MaskControl && r == ' ':
		msg.Type = tea.KeyCtrlAt
	case c.Code.Kind() == key.KindChar && mods == key.MaskControl && r >= 'a' && r <= 'z':
		msg.Type = tea.KeyCtrlA + tea.KeyType(r-'a')
	default:
		t, ok := teaKeys[namedKey{c.Code, mods}]
		if !ok && mods.IsEmpty() {
			t, ok = controlKeys[c.Code]
		}
		if !ok {
			return tea.KeyMsg{}, false
		}
		msg.Type = t
	}

	// Aliased control codes come back as a different key.
	if ev, ok := FromKeyMsg(msg); !ok || !c.Matches(ev) {
		return tea.KeyMsg{}, false
	}
	return msg, true
}

// controlKeys are the named keys bubbletea reports as control codes.
var controlKeys = map[key.Code]tea.KeyType{
	key.Named(key.KeyEnter):     tea.KeyEnter,
	key.Named(key.KeyTab):       tea.KeyTab,
	key.Named(key.KeyEsc):       tea.KeyEsc,
	key.Named(key.KeyBackspace): tea.KeyBackspace,
}

// Binding converts set into a bubbles key binding for help views. Keys
// are bubbletea key strings; the help key is the set displayed in f.
// Chords bubbletea cannot deliver are left out, and a binding without
// keys is disabled.
func Binding(set key.Set, doc string, f key.Format) bubbleskey.Binding {
	var keys []string
	for _, c := range set.Chords() {
		if msg, ok := ToKeyMsg(c); ok {
			keys = append(keys, msg.String())
		}
	}

	opts := []bubbleskey.BindingOpt{
		bubbleskey.WithKeys(keys...),
		bubbleskey.WithHelp(set.Display(f), doc),
	}
	if len(keys) == 0 {
		opts = append(opts, bubbleskey.WithDisabled())
	}
	return bubbleskey.NewBinding(opts...)
}
