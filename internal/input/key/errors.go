package key

import (
	"errors"
	"fmt"
	"strings"
)

// Codec errors
var (
	ErrEmptySpec           = errors.New("empty key specification")
	ErrUnsupportedModifier = errors.New("unsupported modifier")
	ErrUnsupportedKeyCode  = errors.New("unsupported KeyCode")
)

// SupportedKeyCodes lists the accepted key-code tokens for error messages.
var SupportedKeyCodes = supportedKeyCodes()

func supportedKeyCodes() string {
	var b strings.Builder
	b.WriteString("a single character or one of ")
	tokens := make([]string, 0, int(keyCount)+int(mediaCount)+2)
	for k := keyInvalid + 1; k < keyCount; k++ {
		tokens = append(tokens, fmt.Sprintf("%q", keyTokens[k].token))
	}
	tokens = append(tokens, fmt.Sprintf(`"F1" ~ "F%d"`, MaxFunctionKey), fmt.Sprintf("%q", spaceToken))
	for m := mediaInvalid + 1; m < mediaCount; m++ {
		tokens = append(tokens, fmt.Sprintf("%q", mediaTokens[m].token))
	}
	b.WriteString(strings.Join(tokens, ", "))
	return b.String()
}

// ParseError reports a chord string that could not be parsed.
type ParseError struct {
	// Spec is the text that failed to parse.
	Spec string
	// Token is the offending modifier or key-code portion.
	Token string
	// Err is ErrEmptySpec, ErrUnsupportedModifier or ErrUnsupportedKeyCode.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnsupportedModifier):
		return fmt.Sprintf("%v %q in %q: supported modifiers are %s",
			e.Err, e.Token, e.Spec, SupportedModifiers)
	case errors.Is(e.Err, ErrUnsupportedKeyCode):
		return fmt.Sprintf("%v %q in %q: use %s",
			e.Err, e.Token, e.Spec, SupportedKeyCodes)
	default:
		return fmt.Sprintf("parsing %q: %v", e.Spec, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// SerializeError reports a chord with no textual representation.
type SerializeError struct {
	Chord Chord
}

// Error implements the error interface.
func (e *SerializeError) Error() string {
	return fmt.Sprintf("%v: %#v has no textual form", ErrUnsupportedKeyCode, e.Chord.Code)
}

// Unwrap returns ErrUnsupportedKeyCode.
func (e *SerializeError) Unwrap() error {
	return ErrUnsupportedKeyCode
}
