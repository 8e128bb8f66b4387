package loader

import (
	"os"
	"sort"
	"strings"
)

// DefaultEnvPrefix is the prefix of binding override variables.
const DefaultEnvPrefix = "KEYBIND_KEY_"

// EnvLoader loads binding overrides from environment variables.
//
// KEYBIND_KEY_TOGGLE_HELP_WIDGET=F2 overrides toggle_help_widget with a
// single chord. A value wrapped in "[" and "]" is read as a TOML array, so
// KEYBIND_KEY_QUIT='["Control+c", "q"]' sets a list and an empty value
// disables the event.
type EnvLoader struct {
	prefix  string          // Environment variable prefix (e.g., "KEYBIND_KEY_")
	environ func() []string // Source of KEY=value pairs
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "KEYBIND_KEY_").
func NewEnvLoader(prefix string) *EnvLoader {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	return &EnvLoader{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// NewEnvLoaderFrom creates a loader reading from a fixed KEY=value list.
func NewEnvLoaderFrom(prefix string, environ []string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.environ = func() []string { return environ }
	return l
}

// Prefix returns the variable prefix.
func (l *EnvLoader) Prefix() string {
	return l.prefix
}

// Load scans prefixed variables and returns event name to value.
// Values are a string or a []any of strings.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		name, value := parts[0], parts[1]
		event := l.envToEvent(name)
		if event == "" {
			continue
		}

		parsed, err := l.parseValue(value)
		if err != nil {
			return nil, &ParseError{
				Path:    "$" + name,
				Message: err.Error(),
				Err:     err,
			}
		}
		config[event] = parsed
	}

	return config, nil
}

// VarName returns the environment variable that overrides event.
func (l *EnvLoader) VarName(event string) string {
	return l.prefix + strings.ToUpper(event)
}

// Names returns the prefixed variable names currently set, sorted.
func (l *EnvLoader) Names() []string {
	var names []string
	for _, env := range l.environ() {
		if name, _, ok := strings.Cut(env, "="); ok && strings.HasPrefix(name, l.prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// envToEvent converts KEYBIND_KEY_TOGGLE_HELP_WIDGET to toggle_help_widget.
func (l *EnvLoader) envToEvent(env string) string {
	return strings.ToLower(strings.TrimPrefix(env, l.prefix))
}

// parseValue interprets a variable value as one chord or a chord list.
func (l *EnvLoader) parseValue(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []any{}, nil
	}
	if len(s) >= 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return ParseInlineArray(s)
	}
	return s, nil
}
