package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEsc, "Esc"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyBackspace, "Backspace"},
		{KeyPageUp, "PageUp"},
		{KeyKeypadBegin, "KeypadBegin"},
		{Key(200), "Key(200)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every named and media key must have a token and a glyph, otherwise the
// parser cannot produce it and display falls back to "?".
func TestTokenTablesExhaustive(t *testing.T) {
	seen := make(map[string]bool)
	for k := keyInvalid + 1; k < keyCount; k++ {
		e := keyTokens[k]
		if e.token == "" || e.symbol == "" {
			t.Errorf("Key(%d) missing token or symbol", k)
		}
		if seen[e.token] {
			t.Errorf("duplicate token %q", e.token)
		}
		seen[e.token] = true
	}
	for m := mediaInvalid + 1; m < mediaCount; m++ {
		e := mediaTokens[m]
		if e.token == "" || e.symbol == "" {
			t.Errorf("Media(%d) missing token or symbol", m)
		}
		if seen[e.token] {
			t.Errorf("duplicate token %q", e.token)
		}
		seen[e.token] = true
	}
	if got, want := len(codeByToken), int(keyCount-1)+int(mediaCount-1)+MaxFunctionKey+1; got != want {
		t.Errorf("token index size = %d, want %d", got, want)
	}
}

func TestCodeKinds(t *testing.T) {
	tests := []struct {
		code Code
		want Kind
	}{
		{NoKey, KindNone},
		{Char('x'), KindChar},
		{Named(KeyUp), KindNamed},
		{F(3), KindFunction},
		{MediaKey(MediaRecord), KindMedia},
		{Named(keyCount), KindNone},
		{MediaKey(mediaInvalid), KindNone},
		{F(0), KindNone},
	}

	for _, tt := range tests {
		if got := tt.code.Kind(); got != tt.want {
			t.Errorf("%#v.Kind() = %v, want %v", tt.code, got, tt.want)
		}
		if got := tt.code.IsValid(); got != (tt.want != KindNone) {
			t.Errorf("%#v.IsValid() = %v", tt.code, got)
		}
	}
}

func TestCodeAccessors(t *testing.T) {
	if k, ok := Named(KeyHome).Key(); !ok || k != KeyHome {
		t.Errorf("Key() = %v, %v", k, ok)
	}
	if _, ok := Char('a').Key(); ok {
		t.Error("Char should not report a named key")
	}
	if n, ok := F(7).FunctionNumber(); !ok || n != 7 {
		t.Errorf("FunctionNumber() = %d, %v", n, ok)
	}
	if m, ok := MediaKey(MediaRewind).Media(); !ok || m != MediaRewind {
		t.Errorf("Media() = %v, %v", m, ok)
	}
	if Char('z').Rune() != 'z' {
		t.Error("Rune() mismatch")
	}
}

func TestCodeEquality(t *testing.T) {
	if Char('c') != Char('c') {
		t.Error("equal chars should compare equal")
	}
	if Char('c') == Char('C') {
		t.Error("case differs")
	}
	if F(1) == Named(KeyEnter) {
		t.Error("different kinds should differ")
	}
	if Named(KeyEsc) != Named(KeyEsc) {
		t.Error("equal named keys should compare equal")
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Char('q'), "q"},
		{Char(' '), "Space"},
		{Named(KeyEsc), "Esc"},
		{F(11), "F11"},
		{MediaKey(MediaPlayPause), "PlayPause"},
		{NoKey, "?"},
		{F(20), "?"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
