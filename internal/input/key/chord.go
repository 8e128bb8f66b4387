package key

import (
	"strconv"
	"strings"
)

// Chord is one key combined with at most one modifier, e.g. Control+c.
// Chords are values; equality is structural.
type Chord struct {
	// Code is the key.
	Code Code

	// Modifier is the modifier held with the key.
	Modifier Modifier
}

// NewChord creates a chord.
func NewChord(code Code, mod Modifier) Chord {
	return Chord{Code: code, Modifier: mod}
}

// IsValid reports whether the chord has a key.
func (c Chord) IsValid() bool {
	return c.Code.IsValid() && c.Modifier.IsValid()
}

// Matches reports whether a captured event is exactly this chord.
func (c Chord) Matches(e Event) bool {
	return c.IsValid() && c.Code == e.Code && c.Modifier.Mask() == e.Mods
}

// Event returns the captured event this chord matches.
func (c Chord) Event() Event {
	return Event{Code: c.Code, Mods: c.Modifier.Mask()}
}

// String returns the Symbols display form, e.g. "^c".
func (c Chord) String() string {
	return c.Display(FormatSymbols)
}

// MarshalText implements encoding.TextMarshaler using FormatSpec.
func (c Chord) MarshalText() ([]byte, error) {
	s, err := FormatSpec(c)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (c *Chord) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Format selects how chords are rendered for people.
type Format uint8

const (
	// FormatSymbols renders one glyph per modifier and named key: "^c".
	FormatSymbols Format = iota
	// FormatDebug renders the quoted config token: "\"Control+c\"".
	FormatDebug
	// FormatFull renders full words: "Control+c".
	FormatFull
	// FormatAbbreviation renders abbreviated words: "Ctrl+c".
	FormatAbbreviation
)

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatSymbols:
		return "symbols"
	case FormatDebug:
		return "debug"
	case FormatFull:
		return "full"
	case FormatAbbreviation:
		return "abbreviation"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat parses a display format name (case-insensitive).
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "symbols", "symbol", "":
		return FormatSymbols, true
	case "debug":
		return FormatDebug, true
	case "full":
		return FormatFull, true
	case "abbreviation", "abbrev", "short":
		return FormatAbbreviation, true
	default:
		return FormatSymbols, false
	}
}

// separator returns the string placed between chords of a set.
func (f Format) separator() string {
	if f == FormatFull || f == FormatAbbreviation {
		return " | "
	}
	return "|"
}

// Display renders the chord in the given format. Codes without a textual
// form render as "?".
func (c Chord) Display(f Format) string {
	switch f {
	case FormatDebug:
		if s, err := FormatSpec(c); err == nil {
			return strconv.Quote(s)
		}
		return strconv.Quote(c.Modifier.prefix(c.Modifier.String()) + "?")
	case FormatFull:
		return c.Modifier.prefix(c.Modifier.String()) + c.Code.String()
	case FormatAbbreviation:
		return c.Modifier.prefix(c.Modifier.Abbrev()) + c.Code.String()
	default:
		return c.Modifier.Symbol() + c.Code.symbol()
	}
}

// prefix returns name followed by "+", or "" for ModNone.
func (m Modifier) prefix(name string) string {
	if m == ModNone {
		return ""
	}
	if !m.IsValid() {
		return "UNKNOWN+"
	}
	return name + "+"
}

// symbol returns the display glyph for a code.
func (c Code) symbol() string {
	switch c.kind {
	case KindChar:
		if c.r == ' ' {
			return "␣"
		}
		return string(c.r)
	case KindNamed:
		if c.named > keyInvalid && c.named < keyCount {
			return keyTokens[c.named].symbol
		}
	case KindFunction:
		return "F" + strconv.Itoa(int(c.fn))
	case KindMedia:
		if c.media > mediaInvalid && c.media < mediaCount {
			return mediaTokens[c.media].symbol
		}
	}
	return "?"
}
