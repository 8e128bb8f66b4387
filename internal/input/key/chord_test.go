package key

import "testing"

func TestChordDisplay(t *testing.T) {
	ctrlC := NewChord(Char('c'), ModControl)
	esc := NewChord(Named(KeyEsc), ModNone)
	altEnter := NewChord(Named(KeyEnter), ModAlt)

	tests := []struct {
		name   string
		chord  Chord
		format Format
		want   string
	}{
		{"ctrl symbols", ctrlC, FormatSymbols, "^c"},
		{"ctrl full", ctrlC, FormatFull, "Control+c"},
		{"ctrl abbreviation", ctrlC, FormatAbbreviation, "Ctrl+c"},
		{"ctrl debug", ctrlC, FormatDebug, `"Control+c"`},
		{"esc symbols", esc, FormatSymbols, "⎋"},
		{"esc full", esc, FormatFull, "Esc"},
		{"esc debug", esc, FormatDebug, `"Esc"`},
		{"alt symbols", altEnter, FormatSymbols, "⌥⏎"},
		{"alt full", altEnter, FormatFull, "Alternate+Enter"},
		{"alt abbreviation", altEnter, FormatAbbreviation, "Alt+Enter"},
		{"shift abbreviation", NewChord(Named(KeyTab), ModShift), FormatAbbreviation, "Shift+Tab"},
		{"function symbols", NewChord(F(5), ModMeta), FormatSymbols, "⌘F5"},
		{"media symbols", NewChord(MediaKey(MediaPlayPause), ModNone), FormatSymbols, "⏯"},
		{"space symbols", NewChord(Char(' '), ModSuper), FormatSymbols, "❖␣"},
		{"space full", NewChord(Char(' '), ModNone), FormatFull, "Space"},
		{"sentinel symbols", NewChord(NoKey, ModHyper), FormatSymbols, "⎈?"},
		{"sentinel full", NewChord(NoKey, ModNone), FormatFull, "?"},
		{"sentinel debug", NewChord(NoKey, ModShift), FormatDebug, `"Shift+?"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chord.Display(tt.format); got != tt.want {
				t.Errorf("Display(%v) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestChordString(t *testing.T) {
	if got := MustParse("Control+c").String(); got != "^c" {
		t.Errorf("String() = %q, want %q", got, "^c")
	}
}

func TestChordMatches(t *testing.T) {
	c := MustParse("Control+c")

	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"exact", NewRuneEvent('c', MaskControl), true},
		{"no modifier", NewRuneEvent('c', MaskNone), false},
		{"extra modifier", NewRuneEvent('c', MaskControl|MaskShift), false},
		{"other key", NewRuneEvent('x', MaskControl), false},
		{"uppercase", NewRuneEvent('C', MaskControl), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Matches(tt.event); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}

	if NewChord(NoKey, ModNone).Matches(NewEvent(NoKey, MaskNone)) {
		t.Error("sentinel chord must never match")
	}
}

func TestChordText(t *testing.T) {
	var c Chord
	if err := c.UnmarshalText([]byte("Alt+PageUp")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if c != NewChord(Named(KeyPageUp), ModAlt) {
		t.Errorf("UnmarshalText() = %#v %v", c.Code, c.Modifier)
	}

	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "Alternate+PageUp" {
		t.Errorf("MarshalText() = %q", text)
	}

	if err := c.UnmarshalText([]byte("Bogus+x")); err == nil {
		t.Error("UnmarshalText should reject unsupported modifier")
	}
	if _, err := NewChord(NoKey, ModNone).MarshalText(); err == nil {
		t.Error("MarshalText should reject the sentinel")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"symbols", FormatSymbols, true},
		{"", FormatSymbols, true},
		{"Debug", FormatDebug, true},
		{"full", FormatFull, true},
		{"abbrev", FormatAbbreviation, true},
		{"abbreviation", FormatAbbreviation, true},
		{"fancy", FormatSymbols, false},
	}

	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
