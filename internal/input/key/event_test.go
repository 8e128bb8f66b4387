package key

import "testing"

func TestEventChord(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		want   Chord
		wantOK bool
	}{
		{"rune", NewRuneEvent('a', MaskNone), NewChord(Char('a'), ModNone), true},
		{"single modifier", NewRuneEvent('c', MaskControl), NewChord(Char('c'), ModControl), true},
		{"named", NewNamedEvent(KeyEnter, MaskAlt), NewChord(Named(KeyEnter), ModAlt), true},
		{"two modifiers", NewRuneEvent('c', MaskControl|MaskShift), Chord{}, false},
		{"no key", NewEvent(NoKey, MaskNone), Chord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.event.Chord()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Chord() = %#v %v, %v; want %#v %v, %v",
					got.Code, got.Modifier, ok, tt.want.Code, tt.want.Modifier, tt.wantOK)
			}
		})
	}
}

func TestChordEventRoundTrip(t *testing.T) {
	for mod := ModNone; mod < modCount; mod++ {
		c := NewChord(F(2), mod)
		e := c.Event()
		if !c.Matches(e) {
			t.Errorf("%v does not match its own event", c.Display(FormatFull))
		}
		back, ok := e.Chord()
		if !ok || back != c {
			t.Errorf("Event().Chord() = %v, %v", back.Display(FormatFull), ok)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('q', MaskNone), "q"},
		{NewRuneEvent('c', MaskControl), "Control+c"},
		{NewNamedEvent(KeyUp, MaskShift|MaskAlt), "Shift+Alternate+Up"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
