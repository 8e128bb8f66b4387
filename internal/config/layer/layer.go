// Package layer provides ordered configuration layers for key bindings.
//
// Each layer maps event names to raw values. Higher priority layers
// replace the whole value of an event set by a lower layer; values are
// never merged element by element, so an empty list in a higher layer
// disables an event.
package layer

import (
	"time"
)

// Layer represents a single configuration layer.
type Layer struct {
	// Name identifies the layer (e.g., "default", "file", "env").
	Name string

	// Priority determines merge order (higher overrides lower).
	Priority int

	// Source indicates where this layer was loaded from.
	Source Source

	// Path is the file path (if loaded from file).
	Path string

	// Data maps event names to their raw values.
	Data map[string]any

	// LoadedAt is when the layer was read.
	LoadedAt time.Time
}

// NewLayer creates a new configuration layer.
func NewLayer(name string, source Source, priority int) *Layer {
	return &Layer{
		Name:     name,
		Source:   source,
		Priority: priority,
		Data:     make(map[string]any),
		LoadedAt: time.Now(),
	}
}

// NewLayerWithData creates a new layer with initial data.
func NewLayerWithData(name string, source Source, priority int, data map[string]any) *Layer {
	l := NewLayer(name, source, priority)
	if data != nil {
		l.Data = data
	}
	return l
}

// ForSource creates a layer with the standard name and priority of source.
func ForSource(source Source, data map[string]any) *Layer {
	return NewLayerWithData(StandardLayerName(source), source, DefaultPriority(source), data)
}

// WithPath records the file the layer was read from.
func (l *Layer) WithPath(path string) *Layer {
	l.Path = path
	return l
}

// Origin describes where the layer's values came from: the file path for
// file layers, the layer name otherwise.
func (l *Layer) Origin() string {
	if l == nil {
		return ""
	}
	if l.Path != "" {
		return l.Path
	}
	return l.Name
}

// Keys returns the names the layer sets, in no particular order.
func (l *Layer) Keys() []string {
	keys := make([]string, 0, len(l.Data))
	for k := range l.Data {
		keys = append(keys, k)
	}
	return keys
}

// Source indicates where a configuration layer came from.
type Source uint8

const (
	// SourceDefault represents the compiled-in default bindings.
	SourceDefault Source = iota
	// SourceFile represents an override file.
	SourceFile
	// SourceEnv represents environment variables.
	SourceEnv
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	default:
		return "unknown"
	}
}

// cloneMap creates a deep copy of a map.
func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for key, val := range src {
		dst[key] = cloneValue(val)
	}

	return dst
}

// cloneValue creates a deep copy of a value.
func cloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		dst := make([]any, len(v))
		for i, item := range v {
			dst[i] = cloneValue(item)
		}
		return dst
	case []string:
		dst := make([]string, len(v))
		copy(dst, v)
		return dst
	default:
		return val
	}
}
