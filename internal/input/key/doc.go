// Package key provides the key-chord codec for the binding system.
//
// This package defines the fundamental types for representing key chords:
//
//   - Code: Identifies a key (character, named key, function key, media key)
//   - Modifier: The single modifier a chord may carry
//   - Chord: A Code with at most one Modifier
//   - Set: The ordered chords that trigger one logical event
//   - Event: A captured key press with a modifier mask
//
// # Chord Specifications
//
// Chords are written as an optional modifier, a "+", and a key:
//
//   - Simple keys: "q", "Q", "?", "Enter", "Esc", "F5", "Space"
//   - With a modifier: "Control+c", "Ctrl+c", "Alt+Enter", "Shift+Tab"
//   - Media keys: "PlayPause", "Control+MuteVolume"
//
// Modifier names are case-insensitive; key names are not ("esc" is
// rejected). FormatSpec produces the canonical spelling, and
// Parse(FormatSpec(c)) == c for every chord FormatSpec accepts.
//
// # Display
//
// Chords and sets render in four formats:
//
//	FormatSymbols       ^c|Q
//	FormatDebug         "Control+c"|"Q"
//	FormatFull          Control+c | Q
//	FormatAbbreviation  Ctrl+c | Q
package key
