package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse parses a chord specification string into a Chord.
//
// Supported formats:
//   - Single character: "q", "Q", "?", "+"
//   - Named keys: "Enter", "Esc", "F1", "PageUp", "Space", "PlayPause"
//   - With one modifier: "Control+c", "ctrl+c", "Alt+Enter", "Shift+Tab"
//
// Everything after the first "+" is the key portion, so "Control++" binds
// Control with the plus key. Key tokens are case-sensitive, modifier
// tokens are not.
func Parse(spec string) (Chord, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Chord{}, &ParseError{Spec: spec, Err: ErrEmptySpec}
	}

	mod := ModNone
	keyPart := s

	// A lone "+" is the plus key itself.
	if i := strings.IndexByte(s, '+'); i >= 0 && s != "+" {
		modPart := strings.TrimSpace(s[:i])
		m, ok := ModifierFromName(modPart)
		if !ok {
			return Chord{}, &ParseError{Spec: spec, Token: modPart, Err: ErrUnsupportedModifier}
		}
		mod = m
		keyPart = strings.TrimSpace(s[i+1:])
	}

	code := codeFromToken(keyPart)
	if !code.IsValid() {
		return Chord{}, &ParseError{Spec: spec, Token: keyPart, Err: ErrUnsupportedKeyCode}
	}

	return Chord{Code: code, Modifier: mod}, nil
}

// MustParse parses a chord specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return c
}

// FormatSpec formats a chord as a specification string.
// The result parses back to the same chord.
func FormatSpec(c Chord) (string, error) {
	if !c.Modifier.IsValid() {
		return "", &SerializeError{Chord: c}
	}
	tok, err := codeToken(c.Code)
	if err != nil {
		return "", &SerializeError{Chord: c}
	}
	if c.Modifier == ModNone {
		return tok, nil
	}
	return c.Modifier.String() + "+" + tok, nil
}

// NormalizeSpec parses and re-formats a chord specification to its
// canonical form, e.g. "ctrl+c" becomes "Control+c".
func NormalizeSpec(spec string) (string, error) {
	c, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return FormatSpec(c)
}

// codeToken returns the config token for a code.
func codeToken(c Code) (string, error) {
	switch c.kind {
	case KindChar:
		switch {
		case c.r == ' ':
			return spaceToken, nil
		case !unicode.IsPrint(c.r):
			return "", ErrUnsupportedKeyCode
		}
		return string(c.r), nil
	case KindNamed:
		if c.named > keyInvalid && c.named < keyCount {
			return keyTokens[c.named].token, nil
		}
	case KindFunction:
		if c.fn >= 1 && c.fn <= MaxFunctionKey {
			return fmt.Sprintf("F%d", c.fn), nil
		}
	case KindMedia:
		if c.media > mediaInvalid && c.media < mediaCount {
			return mediaTokens[c.media].token, nil
		}
	}
	return "", ErrUnsupportedKeyCode
}
