package keymap

import (
	"sync/atomic"

	"github.com/dshills/keybind/internal/input/key"
)

// Lifecycle states of Bindings.
const (
	stateUninitialized int32 = iota
	stateInitializing
	stateInitialized
)

// Bindings guards a binding table that is loaded exactly once.
//
// InitAndLoad claims initialization with an atomic compare-and-swap; any
// other call, concurrent or later, fails with ErrDoubleInit without
// blocking. Reads before a table is committed fail with ErrUninitialized.
// Once committed the table never changes.
type Bindings struct {
	reg   *Registry
	opts  []Option
	state atomic.Int32
	table atomic.Pointer[Table]
}

// NewBindings creates uninitialized bindings for reg. The options are
// applied on every InitAndLoad attempt.
func NewBindings(reg *Registry, opts ...Option) *Bindings {
	return &Bindings{
		reg:  reg,
		opts: opts,
	}
}

// InitAndLoad resolves and commits the binding table, applying the
// override file at path when path is not empty. If loading fails the
// bindings stay uninitialized and the call may be retried.
func (b *Bindings) InitAndLoad(path string) error {
	if !b.state.CompareAndSwap(stateUninitialized, stateInitializing) {
		return ErrDoubleInit
	}

	opts := make([]Option, 0, len(b.opts)+1)
	opts = append(opts, b.opts...)
	if path != "" {
		opts = append(opts, WithOverrideFile(path))
	}

	t, err := Load(b.reg, opts...)
	if err != nil {
		b.state.Store(stateUninitialized)
		return err
	}

	b.table.Store(t)
	b.state.Store(stateInitialized)
	return nil
}

// Initialized reports whether a table has been committed.
func (b *Bindings) Initialized() bool {
	return b.state.Load() == stateInitialized
}

// Table returns the committed table.
func (b *Bindings) Table() (*Table, error) {
	t := b.table.Load()
	if t == nil {
		return nil, ErrUninitialized
	}
	return t, nil
}

// Match reports whether ev triggers the named event.
func (b *Bindings) Match(name string, ev key.Event) (bool, error) {
	t, err := b.Table()
	if err != nil {
		return false, err
	}
	return t.Match(name, ev)
}

// Dispatch returns every event triggered by ev, in declaration order.
func (b *Bindings) Dispatch(ev key.Event) ([]string, error) {
	t, err := b.Table()
	if err != nil {
		return nil, err
	}
	return t.Dispatch(ev), nil
}

// Display renders the named event's current chords.
func (b *Bindings) Display(name string, f key.Format) (string, error) {
	t, err := b.Table()
	if err != nil {
		return "", err
	}
	return t.Display(name, f)
}

// ConfigExample renders the default bindings as a TOML template. It does
// not depend on initialization.
func (b *Bindings) ConfigExample() (string, error) {
	return Example(b.reg, SyntaxTOML)
}
