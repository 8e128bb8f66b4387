package key

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSingleCharacter(t *testing.T) {
	tests := []struct {
		spec     string
		wantRune rune
	}{
		{"a", 'a'},
		{"Q", 'Q'},
		{"1", '1'},
		{"@", '@'},
		{"?", '?'},
		{"é", 'é'},
		{"+", '+'},
		{"  q  ", 'q'},
		{"Space", ' '},
	}

	for _, tt := range tests {
		c, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if c.Code != Char(tt.wantRune) {
			t.Errorf("Parse(%q) code = %#v, want Char(%q)", tt.spec, c.Code, tt.wantRune)
		}
		if c.Modifier != ModNone {
			t.Errorf("Parse(%q) modifier = %v, want none", tt.spec, c.Modifier)
		}
	}
}

func TestParseNamedKeys(t *testing.T) {
	tests := []struct {
		spec string
		want Code
	}{
		{"Enter", Named(KeyEnter)},
		{"Esc", Named(KeyEsc)},
		{"Tab", Named(KeyTab)},
		{"BackTab", Named(KeyBackTab)},
		{"Backspace", Named(KeyBackspace)},
		{"Delete", Named(KeyDelete)},
		{"Up", Named(KeyUp)},
		{"PageDown", Named(KeyPageDown)},
		{"KeypadBegin", Named(KeyKeypadBegin)},
		{"F1", F(1)},
		{"F12", F(12)},
		{"Play", MediaKey(MediaPlay)},
		{"MuteVolume", MediaKey(MediaMuteVolume)},
	}

	for _, tt := range tests {
		c, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if c.Code != tt.want {
			t.Errorf("Parse(%q) code = %#v, want %#v", tt.spec, c.Code, tt.want)
		}
	}
}

func TestParseModifierStyle(t *testing.T) {
	tests := []struct {
		spec     string
		wantCode Code
		wantMod  Modifier
	}{
		{"Control+c", Char('c'), ModControl},
		{"Ctrl+c", Char('c'), ModControl},
		{"ctrl+c", Char('c'), ModControl},
		{"CONTROL+C", Char('C'), ModControl},
		{"Alt+f", Char('f'), ModAlt},
		{"Alternate+f", Char('f'), ModAlt},
		{"Shift+Tab", Named(KeyTab), ModShift},
		{"Super+Enter", Named(KeyEnter), ModSuper},
		{"Hyper+F4", F(4), ModHyper},
		{"Meta+Stop", MediaKey(MediaStop), ModMeta},
		{"Control++", Char('+'), ModControl},
		{"Control + x", Char('x'), ModControl},
		{"Control+Space", Char(' '), ModControl},
	}

	for _, tt := range tests {
		c, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if c.Code != tt.wantCode {
			t.Errorf("Parse(%q) code = %#v, want %#v", tt.spec, c.Code, tt.wantCode)
		}
		if c.Modifier != tt.wantMod {
			t.Errorf("Parse(%q) modifier = %v, want %v", tt.spec, c.Modifier, tt.wantMod)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Foo+c", ErrUnsupportedModifier},
		{"Cmd+c", ErrUnsupportedModifier},
		{"+c", ErrUnsupportedModifier},
		{"Control+", ErrUnsupportedKeyCode},
		{"Alt+  ", ErrUnsupportedKeyCode},
		{"esc", ErrUnsupportedKeyCode},
		{"enter", ErrUnsupportedKeyCode},
		{"F13", ErrUnsupportedKeyCode},
		{"F0", ErrUnsupportedKeyCode},
		{"ab", ErrUnsupportedKeyCode},
		// only one modifier per chord
		{"Control+Shift+c", ErrUnsupportedKeyCode},
		{"Ctrl+Alt+Delete", ErrUnsupportedKeyCode},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if err == nil {
			t.Errorf("Parse(%q) expected error", tt.spec)
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error type = %T, want *ParseError", tt.spec, err)
		}
	}
}

func TestParseErrorNamesVocabulary(t *testing.T) {
	_, err := Parse("Foo+c")
	if err == nil || !strings.Contains(err.Error(), "Shift, Control (Ctrl), Alt (Alternate), Super, Hyper, Meta") {
		t.Errorf("modifier error should list modifiers, got %v", err)
	}

	_, err = Parse("Escape")
	if err == nil {
		t.Fatal("expected error for Escape")
	}
	for _, want := range []string{`"Escape"`, `"Esc"`, `"Backspace"`, `"F1" ~ "F12"`, `"MuteVolume"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("key code error %q should mention %s", err.Error(), want)
		}
	}
}

func TestFormatSpec(t *testing.T) {
	tests := []struct {
		chord Chord
		want  string
	}{
		{NewChord(Char('c'), ModControl), "Control+c"},
		{NewChord(Char('c'), ModAlt), "Alternate+c"},
		{NewChord(Char('Q'), ModNone), "Q"},
		{NewChord(Named(KeyEsc), ModNone), "Esc"},
		{NewChord(Named(KeyBackTab), ModShift), "Shift+BackTab"},
		{NewChord(F(10), ModNone), "F10"},
		{NewChord(MediaKey(MediaTrackNext), ModSuper), "Super+TrackNext"},
		{NewChord(Char(' '), ModNone), "Space"},
		{NewChord(Char('+'), ModMeta), "Meta++"},
		{NewChord(Char('+'), ModNone), "+"},
	}

	for _, tt := range tests {
		got, err := FormatSpec(tt.chord)
		if err != nil {
			t.Errorf("FormatSpec(%#v) error = %v", tt.chord.Code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatSpec(%#v) = %q, want %q", tt.chord.Code, got, tt.want)
		}
	}
}

func TestFormatSpecErrors(t *testing.T) {
	tests := []struct {
		name  string
		chord Chord
	}{
		{"sentinel", NewChord(NoKey, ModNone)},
		{"sentinel with modifier", NewChord(NoKey, ModAlt)},
		{"F13", NewChord(F(13), ModNone)},
		{"control character", NewChord(Char('\t'), ModNone)},
		{"invalid modifier", NewChord(Char('c'), Modifier(42))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatSpec(tt.chord)
			if err == nil {
				t.Fatalf("FormatSpec() = %q, want error", got)
			}
			if got != "" {
				t.Errorf("FormatSpec() returned %q alongside error", got)
			}
			var serr *SerializeError
			if !errors.As(err, &serr) {
				t.Errorf("error type = %T, want *SerializeError", err)
			}
			if !errors.Is(err, ErrUnsupportedKeyCode) {
				t.Errorf("error should wrap ErrUnsupportedKeyCode")
			}
		})
	}
}

// allCodes returns every code with a textual form.
func allCodes() []Code {
	codes := []Code{Char('a'), Char('Z'), Char('0'), Char('+'), Char('|'), Char(' '), Char('é'), Char('\uFFFD')}
	for k := keyInvalid + 1; k < keyCount; k++ {
		codes = append(codes, Named(k))
	}
	for n := 1; n <= MaxFunctionKey; n++ {
		codes = append(codes, F(n))
	}
	for m := mediaInvalid + 1; m < mediaCount; m++ {
		codes = append(codes, MediaKey(m))
	}
	return codes
}

func TestRoundTrip(t *testing.T) {
	for _, code := range allCodes() {
		for mod := ModNone; mod < modCount; mod++ {
			c := NewChord(code, mod)
			spec, err := FormatSpec(c)
			if err != nil {
				t.Errorf("FormatSpec(%#v, %v) error = %v", code, mod, err)
				continue
			}
			parsed, err := Parse(spec)
			if err != nil {
				t.Errorf("Parse(%q) error = %v", spec, err)
				continue
			}
			if parsed != c {
				t.Errorf("Parse(FormatSpec(%#v, %v)) = %#v, %v", code, mod, parsed.Code, parsed.Modifier)
			}
		}
	}
}

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"ctrl+c", "Control+c"},
		{"alt+Enter", "Alternate+Enter"},
		{" q ", "q"},
		{"SHIFT+Tab", "Shift+Tab"},
	}

	for _, tt := range tests {
		got, err := NormalizeSpec(tt.spec)
		if err != nil {
			t.Errorf("NormalizeSpec(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeSpec(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestMustParse(t *testing.T) {
	c := MustParse("Control+c")
	if c != NewChord(Char('c'), ModControl) {
		t.Errorf("MustParse() = %#v", c.Code)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("Nope+x")
}
