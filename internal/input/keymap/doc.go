// Package keymap binds logical input events to key chords.
//
// A host application declares its events once in a Registry, each with a
// name, a one-line description and default chords. Load resolves the
// defaults against an optional override file and environment variables
// into a read-only Table, which matches captured key events.
//
// # Layers
//
// Bindings resolve from three layers, lowest priority first:
//
//	default  compiled-in chords from the Registry
//	file     a TOML or YAML override document
//	env      KEYBIND_KEY_<EVENT> variables
//
// A layer that sets an event replaces its chords entirely. Setting an event
// to an empty list disables it. Events a layer omits keep the lower value.
//
// # Override documents
//
// Each top-level key is an event name; its value is a chord or a list:
//
//	quit = ["Control+c", "q"]
//	toggle_help_widget = "F2"
//	scroll_down = []
//
// Unknown keys and invalid chords are rejected with a *FormatError that
// names the key. Example renders a complete template of the defaults.
//
// # Dispatch
//
// Table.Dispatch returns every event a key triggers, in declaration order,
// so overlapping bindings are reported together:
//
//	reg := keymap.NewRegistry().
//	    Define("quit", "Quit", "Control+c", "q").
//	    Define("cancel", "Cancel", "Esc", "Control+c")
//
//	table, err := keymap.Load(reg, keymap.WithOverrideFile(path))
//	if err != nil {
//	    return err
//	}
//	table.Dispatch(key.NewRuneEvent('c', key.MaskControl)) // [quit cancel]
//
// # One-time initialization
//
// Bindings wraps a table that is committed exactly once per value. A second
// InitAndLoad fails with ErrDoubleInit and reads before the first succeeds
// fail with ErrUninitialized.
package keymap
