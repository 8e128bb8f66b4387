package layer

import (
	"sort"
	"sync"
)

// Stack holds configuration layers and resolves values across them.
type Stack struct {
	mu     sync.RWMutex
	layers []*Layer // Sorted by priority (ascending)
}

// NewStack creates a stack holding the given layers.
func NewStack(layers ...*Layer) *Stack {
	s := &Stack{layers: make([]*Layer, 0, len(layers))}
	for _, l := range layers {
		s.AddLayer(l)
	}
	return s
}

// AddLayer adds a layer to the stack. Layers are kept sorted by priority;
// layers of equal priority keep their insertion order.
func (s *Stack) AddLayer(layer *Layer) {
	if layer == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.layers = append(s.layers, layer)
	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].Priority < s.layers[j].Priority
	})
}

// Layers returns a copy of all layers sorted by priority.
func (s *Stack) Layers() []*Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Layer, len(s.layers))
	copy(result, s.layers)
	return result
}

// Resolve returns the effective value for key and the layer it came from.
// The highest priority layer that sets key wins outright.
func (s *Stack) Resolve(key string) (any, *Layer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if val, ok := layer.Data[key]; ok {
			return cloneValue(val), layer, true
		}
	}

	return nil, nil, false
}
