package key

import (
	"errors"
	"strings"
	"testing"
)

func quitSet(t *testing.T) Set {
	t.Helper()
	s, err := ParseSet([]string{"Control+c", "Q", "q"})
	if err != nil {
		t.Fatalf("ParseSet() error = %v", err)
	}
	return s
}

func TestParseSet(t *testing.T) {
	s := quitSet(t)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	chords := s.Chords()
	if chords[0] != NewChord(Char('c'), ModControl) || chords[1] != NewChord(Char('Q'), ModNone) {
		t.Errorf("Chords() order not preserved")
	}

	// Chords returns a copy.
	chords[0] = NewChord(Char('z'), ModNone)
	if s.Chords()[0] != NewChord(Char('c'), ModControl) {
		t.Error("mutating Chords() result changed the set")
	}
}

func TestParseSetError(t *testing.T) {
	_, err := ParseSet([]string{"q", "Control+Shift+x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnsupportedKeyCode) {
		t.Errorf("error = %v, want ErrUnsupportedKeyCode", err)
	}
	if !strings.Contains(err.Error(), "chord 1") {
		t.Errorf("error should name the chord index: %v", err)
	}
}

func TestSetMatchAny(t *testing.T) {
	s := quitSet(t)

	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"control c", NewRuneEvent('c', MaskControl), true},
		{"upper Q", NewRuneEvent('Q', MaskNone), true},
		{"lower q", NewRuneEvent('q', MaskNone), true},
		{"plain c", NewRuneEvent('c', MaskNone), false},
		{"x", NewRuneEvent('x', MaskNone), false},
		{"shift Q", NewRuneEvent('Q', MaskShift), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.MatchAny(tt.event); got != tt.want {
				t.Errorf("MatchAny(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestEmptySetMatchesNothing(t *testing.T) {
	var s Set
	if s.MatchAny(NewRuneEvent('q', MaskNone)) {
		t.Error("empty set should not match")
	}
	if !s.IsEmpty() || s.Display(FormatFull) != "" {
		t.Error("empty set should render as empty string")
	}
}

func TestSetDisplay(t *testing.T) {
	s := NewSet(MustParse("Control+c"), MustParse("Q"))

	tests := []struct {
		format Format
		want   string
	}{
		{FormatSymbols, "^c|Q"},
		{FormatDebug, `"Control+c"|"Q"`},
		{FormatFull, "Control+c | Q"},
		{FormatAbbreviation, "Ctrl+c | Q"},
	}

	for _, tt := range tests {
		first := s.Display(tt.format)
		if first != tt.want {
			t.Errorf("Display(%v) = %q, want %q", tt.format, first, tt.want)
		}
		if second := s.Display(tt.format); second != first {
			t.Errorf("Display(%v) not idempotent: %q then %q", tt.format, first, second)
		}
	}

	if s.String() != "^c|Q" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestSetSpecs(t *testing.T) {
	s := quitSet(t)
	specs, err := s.Specs()
	if err != nil {
		t.Fatalf("Specs() error = %v", err)
	}
	want := []string{"Control+c", "Q", "q"}
	if strings.Join(specs, ",") != strings.Join(want, ",") {
		t.Errorf("Specs() = %v, want %v", specs, want)
	}

	bad := NewSet(NewChord(F(30), ModNone))
	if _, err := bad.Specs(); err == nil {
		t.Error("Specs() should fail for unserializable chords")
	}
}

func TestSetEquality(t *testing.T) {
	a := quitSet(t)
	b := NewSet(MustParse("Ctrl+c"), MustParse("Q"), MustParse("q"))
	if !a.Equals(b) {
		t.Error("equal sets should compare equal")
	}
	if a.Equals(NewSet(MustParse("q"), MustParse("Q"), MustParse("Control+c"))) {
		t.Error("order matters for Equals")
	}
	if !a.Contains(MustParse("Q")) || a.Contains(MustParse("x")) {
		t.Error("Contains mismatch")
	}
}
