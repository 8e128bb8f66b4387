package key

import (
	"fmt"
	"unicode/utf8"
)

// Kind is the outer tag of a Code.
type Kind uint8

const (
	// KindNone marks the sentinel code: no key resolved.
	KindNone Kind = iota
	// KindChar is a literal character key.
	KindChar
	// KindNamed is one of the named control keys (see Key).
	KindNamed
	// KindFunction is a function key F1-F12.
	KindFunction
	// KindMedia is one of the media keys (see Media).
	KindMedia
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindChar:
		return "Char"
	case KindNamed:
		return "Named"
	case KindFunction:
		return "Function"
	case KindMedia:
		return "Media"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Key identifies a named control key.
type Key uint8

const (
	keyInvalid Key = iota

	// Editing keys
	KeyBackspace
	KeyEnter
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyEsc

	// Arrow keys
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Lock and system keys
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyMenu
	KeyKeypadBegin

	keyCount
)

// String returns the config token for the key.
func (k Key) String() string {
	if k > keyInvalid && k < keyCount {
		return keyTokens[k].token
	}
	return fmt.Sprintf("Key(%d)", k)
}

// Media identifies a media key.
type Media uint8

const (
	mediaInvalid Media = iota
	MediaPlay
	MediaPlayPause
	MediaReverse
	MediaStop
	MediaFastForward
	MediaRewind
	MediaTrackNext
	MediaTrackPrevious
	MediaRecord
	MediaLowerVolume
	MediaRaiseVolume
	MediaMuteVolume

	mediaCount
)

// String returns the config token for the media key.
func (m Media) String() string {
	if m > mediaInvalid && m < mediaCount {
		return mediaTokens[m].token
	}
	return fmt.Sprintf("Media(%d)", m)
}

// MaxFunctionKey is the highest function key number with a textual form.
const MaxFunctionKey = 12

// Code is a single physical or logical key.
//
// Codes are comparable; two codes are equal iff they denote the same key.
// The zero value is NoKey, the sentinel for "no key resolved".
type Code struct {
	kind  Kind
	r     rune
	named Key
	fn    uint8
	media Media
}

// NoKey is the sentinel code. It never appears in a parsed chord.
var NoKey = Code{}

// Char returns the code for a literal character key.
func Char(r rune) Code {
	return Code{kind: KindChar, r: r}
}

// Named returns the code for a named control key.
func Named(k Key) Code {
	if k <= keyInvalid || k >= keyCount {
		return NoKey
	}
	return Code{kind: KindNamed, named: k}
}

// F returns the code for function key n.
// Numbers outside 1-255 yield NoKey.
func F(n int) Code {
	if n < 1 || n > 255 {
		return NoKey
	}
	return Code{kind: KindFunction, fn: uint8(n)}
}

// MediaKey returns the code for a media key.
func MediaKey(m Media) Code {
	if m <= mediaInvalid || m >= mediaCount {
		return NoKey
	}
	return Code{kind: KindMedia, media: m}
}

// Kind returns the outer tag of the code.
func (c Code) Kind() Kind {
	return c.kind
}

// Rune returns the character for KindChar codes, 0 otherwise.
func (c Code) Rune() rune {
	return c.r
}

// Key returns the named key for KindNamed codes.
func (c Code) Key() (Key, bool) {
	return c.named, c.kind == KindNamed
}

// FunctionNumber returns n for function key Fn.
func (c Code) FunctionNumber() (int, bool) {
	return int(c.fn), c.kind == KindFunction
}

// Media returns the media key for KindMedia codes.
func (c Code) Media() (Media, bool) {
	return c.media, c.kind == KindMedia
}

// IsValid reports whether the code denotes a key.
func (c Code) IsValid() bool {
	return c.kind != KindNone
}

// String returns the config token, or "?" when the code has none.
func (c Code) String() string {
	tok, err := codeToken(c)
	if err != nil {
		return "?"
	}
	return tok
}

// GoString implements fmt.GoStringer for debugging.
func (c Code) GoString() string {
	switch c.kind {
	case KindChar:
		return fmt.Sprintf("Char(%q)", c.r)
	case KindNamed:
		return "Named(" + c.named.String() + ")"
	case KindFunction:
		return fmt.Sprintf("F(%d)", c.fn)
	case KindMedia:
		return "Media(" + c.media.String() + ")"
	default:
		return "NoKey"
	}
}

// tokenEntry ties a key to its config token and display glyph.
type tokenEntry struct {
	token  string
	symbol string
}

// keyTokens is indexed by Key. Parser, serializer and display all read it,
// so the spellings stay symmetric.
var keyTokens = [keyCount]tokenEntry{
	KeyBackspace:   {"Backspace", "⌫"},
	KeyEnter:       {"Enter", "⏎"},
	KeyTab:         {"Tab", "⇥"},
	KeyBackTab:     {"BackTab", "⇤"},
	KeyDelete:      {"Delete", "⌦"},
	KeyInsert:      {"Insert", "⎀"},
	KeyEsc:         {"Esc", "⎋"},
	KeyLeft:        {"Left", "←"},
	KeyRight:       {"Right", "→"},
	KeyUp:          {"Up", "↑"},
	KeyDown:        {"Down", "↓"},
	KeyHome:        {"Home", "⤒"},
	KeyEnd:         {"End", "⤓"},
	KeyPageUp:      {"PageUp", "⇞"},
	KeyPageDown:    {"PageDown", "⇟"},
	KeyCapsLock:    {"CapsLock", "\U0001F130"},  // 🄰
	KeyScrollLock:  {"ScrollLock", "\U0001F4DC"}, // 📜
	KeyNumLock:     {"NumLock", "①"},
	KeyPrintScreen: {"PrintScreen", "⎙"},
	KeyPause:       {"Pause", "⎉"},
	KeyMenu:        {"Menu", "\U0001F5C7"},      // 🗇
	KeyKeypadBegin: {"KeypadBegin", "\U0001F5CA"}, // 🗊
}

// mediaTokens is indexed by Media.
var mediaTokens = [mediaCount]tokenEntry{
	MediaPlay:          {"Play", "⏵"},
	MediaPlayPause:     {"PlayPause", "⏯"},
	MediaReverse:       {"Reverse", "⭯"},
	MediaStop:          {"Stop", "⏹"},
	MediaFastForward:   {"FastForward", "⏭"},
	MediaRewind:        {"Rewind", "⭮"},
	MediaTrackNext:     {"TrackNext", "⧐"},
	MediaTrackPrevious: {"TrackPrevious", "⧏"},
	MediaRecord:        {"Record", "␞"},
	MediaLowerVolume:   {"LowerVolume", "\U0001F508"}, // 🔈
	MediaRaiseVolume:   {"RaiseVolume", "\U0001F50A"}, // 🔊
	MediaMuteVolume:    {"MuteVolume", "\U0001F507"},  // 🔇
}

// spaceToken is the textual form of the space character, which would
// otherwise be lost to whitespace trimming.
const spaceToken = "Space"

// codeByToken maps every multi-character token to its code.
var codeByToken = buildTokenIndex()

func buildTokenIndex() map[string]Code {
	index := make(map[string]Code, int(keyCount)+int(mediaCount)+MaxFunctionKey+1)
	for k := keyInvalid + 1; k < keyCount; k++ {
		index[keyTokens[k].token] = Named(k)
	}
	for m := mediaInvalid + 1; m < mediaCount; m++ {
		index[mediaTokens[m].token] = MediaKey(m)
	}
	for n := 1; n <= MaxFunctionKey; n++ {
		index[fmt.Sprintf("F%d", n)] = F(n)
	}
	index[spaceToken] = Char(' ')
	return index
}

// codeFromToken resolves a key-code token. Named tokens match exactly
// (case-sensitive); any other single rune is a literal character.
// Unresolved tokens yield NoKey.
func codeFromToken(tok string) Code {
	if c, ok := codeByToken[tok]; ok {
		return c
	}
	if utf8.RuneCountInString(tok) == 1 {
		r, size := utf8.DecodeRuneInString(tok)
		if r != utf8.RuneError || size > 1 {
			return Char(r)
		}
	}
	return NoKey
}
