package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/keybind/internal/config/layer"
	"github.com/dshills/keybind/internal/config/loader"
	"github.com/dshills/keybind/internal/input/key"
)

// Option configures Load.
type Option func(*options)

type options struct {
	overridePath string
	envPrefix    string
	fs           loader.FileSystem
	logger       zerolog.Logger
}

// WithOverrideFile applies the TOML or YAML document at path over the
// defaults. An empty path is ignored.
func WithOverrideFile(path string) Option {
	return func(o *options) {
		o.overridePath = path
	}
}

// WithEnv applies <prefix><EVENT> environment variables over the file.
func WithEnv(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithFS reads override files through fsys.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithLogger sets the logger used while resolving layers.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Load resolves a binding table: defaults from reg, then the override file,
// then environment variables. A value present in a higher layer replaces
// the event's chords entirely; an empty list disables the event.
//
// Defaults that fail to parse yield ErrDefaultBinding. An unreadable file
// yields ErrConfigRead. Malformed documents, unknown events and bad chords
// yield a *FormatError naming the offending key.
func Load(reg *Registry, opts ...Option) (*Table, error) {
	o := options{
		fs:     loader.DefaultFS(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	defaults, err := reg.defaultSets()
	if err != nil {
		return nil, err
	}

	stack := layer.NewStack(layer.ForSource(layer.SourceDefault, reg.defaultData()))

	if o.overridePath != "" {
		data, err := loader.ForPath(o.fs, o.overridePath).Load()
		if err != nil {
			return nil, wrapLoadError(o.overridePath, err)
		}
		stack.AddLayer(layer.ForSource(layer.SourceFile, data).WithPath(o.overridePath))
	}

	if o.envPrefix != "" {
		env := loader.NewEnvLoader(o.envPrefix)
		data, err := env.Load()
		if err != nil {
			return nil, wrapLoadError("environment", err)
		}
		o.logger.Debug().
			Str("prefix", env.Prefix()).
			Int("variables", len(data)).
			Msg("read environment overrides")
		stack.AddLayer(layer.ForSource(layer.SourceEnv, data))
	}

	// Every override layer is checked in full, including values a higher
	// layer shadows.
	parsed := make(map[*layer.Layer]map[string]key.Set)
	for _, l := range stack.Layers() {
		if l.Source == layer.SourceDefault {
			continue
		}
		sets, err := parseLayer(reg, l)
		if err != nil {
			return nil, err
		}
		parsed[l] = sets
		o.logger.Debug().
			Str("layer", l.Name).
			Str("origin", l.Origin()).
			Int("events", len(sets)).
			Msg("applied binding layer")
	}

	entries := make([]Entry, 0, reg.Len())
	for _, def := range reg.defs {
		entry := Entry{
			Name:   def.Name,
			Doc:    def.Doc,
			Set:    defaults[def.Name],
			Source: layer.SourceDefault,
			Origin: layer.StandardLayerName(layer.SourceDefault),
		}
		if _, l, ok := stack.Resolve(def.Name); ok && l.Source != layer.SourceDefault {
			entry.Set = parsed[l][def.Name]
			entry.Source = l.Source
			entry.Origin = l.Origin()
			o.logger.Info().
				Str("event", def.Name).
				Str("origin", entry.Origin).
				Str("chords", entry.Set.Display(key.FormatFull)).
				Msg("binding overridden")
		}
		entries = append(entries, entry)
	}

	return newTable(entries), nil
}

// parseLayer parses every value of an override layer into a chord set.
func parseLayer(reg *Registry, l *layer.Layer) (map[string]key.Set, error) {
	names := l.Keys()
	sort.Strings(names)

	sets := make(map[string]key.Set, len(names))
	for _, name := range names {
		if !reg.Has(name) {
			return nil, &FormatError{
				Path:  l.Origin(),
				Event: name,
				Err:   fmt.Errorf("%w; known events are %s", ErrUnknownEvent, strings.Join(reg.Names(), ", ")),
			}
		}
		specs, err := chordSpecs(l.Data[name])
		if err != nil {
			return nil, &FormatError{Path: l.Origin(), Event: name, Err: err}
		}
		set, err := key.ParseSet(specs)
		if err != nil {
			return nil, &FormatError{Path: l.Origin(), Event: name, Err: err}
		}
		sets[name] = set
	}
	return sets, nil
}

// chordSpecs accepts a single chord string or a list of chord strings.
func chordSpecs(v any) ([]string, error) {
	switch val := v.(type) {
	case string:
		return []string{val}, nil
	case []string:
		return val, nil
	case []any:
		specs := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("chord %d: expected a string, got %T", i, item)
			}
			specs[i] = s
		}
		return specs, nil
	default:
		return nil, fmt.Errorf("expected a chord string or a list of chord strings, got %T", v)
	}
}

// wrapLoadError maps loader failures onto the keymap error taxonomy.
func wrapLoadError(source string, err error) error {
	if errors.Is(err, loader.ErrRead) {
		return fmt.Errorf("%w: %w", ErrConfigRead, err)
	}
	return &FormatError{Path: source, Err: err}
}
