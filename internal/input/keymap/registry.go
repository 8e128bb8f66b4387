package keymap

import (
	"fmt"

	"github.com/dshills/keybind/internal/input/key"
)

// Definition declares one logical event and its default chords.
type Definition struct {
	// Name is the config key, lowercase snake_case (e.g. "toggle_help_widget").
	Name string

	// Doc is a one-line description written into the example config.
	Doc string

	// Defaults are the chord specifications bound when nothing overrides them.
	Defaults []string
}

// Registry is the ordered table of event definitions. Declaration order is
// the order of dispatch results and of the example config.
type Registry struct {
	defs  []Definition
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Define declares an event. Problems such as duplicate names are reported
// by Validate, so definitions can be chained.
func (r *Registry) Define(name, doc string, chords ...string) *Registry {
	defaults := make([]string, len(chords))
	copy(defaults, chords)

	if _, exists := r.index[name]; !exists {
		r.index[name] = len(r.defs)
	}
	r.defs = append(r.defs, Definition{Name: name, Doc: doc, Defaults: defaults})
	return r
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Has reports whether name is a defined event.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	i, ok := r.index[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i].clone(), true
}

// Names returns event names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.Name
	}
	return names
}

// Definitions returns a copy of all definitions in declaration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, len(r.defs))
	for i, d := range r.defs {
		defs[i] = d.clone()
	}
	return defs
}

// Validate checks names and parses every default chord.
// A default that fails to parse yields an error wrapping ErrDefaultBinding.
func (r *Registry) Validate() error {
	seen := make(map[string]bool, len(r.defs))
	for i, d := range r.defs {
		if !validName(d.Name) {
			return fmt.Errorf("%w: definition %d: name %q must be lowercase snake_case", ErrInvalidDefinition, i, d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate event %q", ErrInvalidDefinition, d.Name)
		}
		seen[d.Name] = true

		if _, err := key.ParseSet(d.Defaults); err != nil {
			return fmt.Errorf("%w for %q: %w", ErrDefaultBinding, d.Name, err)
		}
	}
	return nil
}

// defaultSets parses every definition's defaults.
func (r *Registry) defaultSets() (map[string]key.Set, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	sets := make(map[string]key.Set, len(r.defs))
	for _, d := range r.defs {
		// Validate already parsed these successfully.
		set, _ := key.ParseSet(d.Defaults)
		sets[d.Name] = set
	}
	return sets, nil
}

// defaultData returns the defaults in the raw form override layers use.
func (r *Registry) defaultData() map[string]any {
	data := make(map[string]any, len(r.defs))
	for _, d := range r.defs {
		list := make([]any, len(d.Defaults))
		for i, s := range d.Defaults {
			list[i] = s
		}
		data[d.Name] = list
	}
	return data
}

func (d Definition) clone() Definition {
	defaults := make([]string, len(d.Defaults))
	copy(defaults, d.Defaults)
	d.Defaults = defaults
	return d
}

// validName reports whether name is a lowercase snake_case identifier.
func validName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
