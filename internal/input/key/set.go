package key

import (
	"fmt"
	"strings"
)

// Set is the ordered list of chords that trigger one logical event.
// Order only matters for display; any member may match.
// An empty Set matches nothing, which is how an event is disabled.
type Set struct {
	chords []Chord
}

// NewSet creates a set from chords, keeping their order.
func NewSet(chords ...Chord) Set {
	if len(chords) == 0 {
		return Set{}
	}
	cp := make([]Chord, len(chords))
	copy(cp, chords)
	return Set{chords: cp}
}

// ParseSet parses chord specifications into a set. The first invalid
// specification aborts parsing; its index is included in the error.
func ParseSet(specs []string) (Set, error) {
	chords := make([]Chord, 0, len(specs))
	for i, spec := range specs {
		c, err := Parse(spec)
		if err != nil {
			return Set{}, fmt.Errorf("chord %d: %w", i, err)
		}
		chords = append(chords, c)
	}
	return Set{chords: chords}, nil
}

// Len returns the number of chords in the set.
func (s Set) Len() int {
	return len(s.chords)
}

// IsEmpty reports whether the set has no chords.
func (s Set) IsEmpty() bool {
	return len(s.chords) == 0
}

// Chords returns a copy of the chords in insertion order.
func (s Set) Chords() []Chord {
	cp := make([]Chord, len(s.chords))
	copy(cp, s.chords)
	return cp
}

// MatchAny reports whether some chord in the set matches the event.
func (s Set) MatchAny(e Event) bool {
	for _, c := range s.chords {
		if c.Matches(e) {
			return true
		}
	}
	return false
}

// Contains reports whether the set holds the chord.
func (s Set) Contains(c Chord) bool {
	for _, member := range s.chords {
		if member == c {
			return true
		}
	}
	return false
}

// Equals reports whether two sets hold the same chords in the same order.
func (s Set) Equals(other Set) bool {
	if len(s.chords) != len(other.chords) {
		return false
	}
	for i := range s.chords {
		if s.chords[i] != other.chords[i] {
			return false
		}
	}
	return true
}

// Specs returns the specification string of every chord.
func (s Set) Specs() ([]string, error) {
	specs := make([]string, 0, len(s.chords))
	for _, c := range s.chords {
		spec, err := FormatSpec(c)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Display renders every chord in insertion order, joined by "|" for the
// Symbols and Debug formats and " | " for Full and Abbreviation.
func (s Set) Display(f Format) string {
	parts := make([]string, len(s.chords))
	for i, c := range s.chords {
		parts[i] = c.Display(f)
	}
	return strings.Join(parts, f.separator())
}

// String returns the Symbols display form, e.g. "^c|Q".
func (s Set) String() string {
	return s.Display(FormatSymbols)
}
