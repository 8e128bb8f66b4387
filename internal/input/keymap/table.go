package keymap

import (
	"fmt"

	"github.com/dshills/keybind/internal/config/layer"
	"github.com/dshills/keybind/internal/input/key"
)

// Entry is one resolved event in a Table.
type Entry struct {
	// Name is the event name.
	Name string

	// Doc is the event description.
	Doc string

	// Set holds the chords bound to the event. An empty set disables it.
	Set key.Set

	// Source is the kind of layer the binding came from.
	Source layer.Source

	// Origin names the layer or file the binding came from.
	Origin string
}

// Table is a resolved, read-only binding table. It is safe for concurrent
// use by multiple goroutines.
type Table struct {
	entries []Entry
	index   map[string]int
}

func newTable(entries []Entry) *Table {
	t := &Table{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		t.index[e.Name] = i
	}
	return t
}

func (t *Table) lookup(name string) (*Entry, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEvent, name)
	}
	return &t.entries[i], nil
}

// Match reports whether ev triggers the named event.
func (t *Table) Match(name string, ev key.Event) (bool, error) {
	e, err := t.lookup(name)
	if err != nil {
		return false, err
	}
	return e.Set.MatchAny(ev), nil
}

// Dispatch returns every event triggered by ev, in declaration order.
// The result is empty, never nil, when nothing matches.
func (t *Table) Dispatch(ev key.Event) []string {
	matched := make([]string, 0, 1)
	for _, e := range t.entries {
		if e.Set.MatchAny(ev) {
			matched = append(matched, e.Name)
		}
	}
	return matched
}

// Display renders the named event's chords.
func (t *Table) Display(name string, f key.Format) (string, error) {
	e, err := t.lookup(name)
	if err != nil {
		return "", err
	}
	return e.Set.Display(f), nil
}

// Set returns the chords bound to the named event.
func (t *Table) Set(name string) (key.Set, bool) {
	e, err := t.lookup(name)
	if err != nil {
		return key.Set{}, false
	}
	return e.Set, true
}

// Origin returns where the named event's binding came from, or "" for
// unknown events.
func (t *Table) Origin(name string) string {
	e, err := t.lookup(name)
	if err != nil {
		return ""
	}
	return e.Origin
}

// Events returns event names in declaration order.
func (t *Table) Events() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of all entries in declaration order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Overridden returns the events whose binding does not come from defaults.
func (t *Table) Overridden() []string {
	var names []string
	for _, e := range t.entries {
		if e.Source != layer.SourceDefault {
			names = append(names, e.Name)
		}
	}
	return names
}
