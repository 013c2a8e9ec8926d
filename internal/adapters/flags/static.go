// Package flags serves feature flags from configuration.
package flags

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/jsamuelsen/numerology-service/internal/ports"
)

var _ ports.FeatureFlags = (*Static)(nil)

// Static evaluates flags from a fixed set of values loaded at startup.
// Values may be bools, strings or numbers; strings are parsed on demand.
type Static struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewStatic copies values into a new Static.
func NewStatic(values map[string]any) *Static {
	s := &Static{values: make(map[string]any, len(values))}
	for k, v := range values {
		s.values[k] = v
	}

	return s
}

// FromBools builds a Static from the config features section.
func FromBools(values map[string]bool) *Static {
	m := make(map[string]any, len(values))
	for k, v := range values {
		m[k] = v
	}

	return NewStatic(m)
}

// Set overrides one flag. Tests use it to flip behaviour at runtime.
func (s *Static) Set(flag string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[flag] = value
}

func (s *Static) lookup(flag string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[flag]

	return v, ok
}

// IsEnabled implements ports.FeatureFlags.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	v, ok := s.lookup(flag)
	if !ok {
		return defaultValue
	}

	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return defaultValue
		}

		return b
	default:
		return defaultValue
	}
}

// GetString implements ports.FeatureFlags.
func (s *Static) GetString(_ context.Context, flag string, defaultValue string) string {
	v, ok := s.lookup(flag)
	if !ok || v == nil {
		return defaultValue
	}

	if str, ok := v.(string); ok {
		return str
	}

	return fmt.Sprint(v)
}

// GetInt implements ports.FeatureFlags.
func (s *Static) GetInt(_ context.Context, flag string, defaultValue int) int {
	v, ok := s.lookup(flag)
	if !ok {
		return defaultValue
	}

	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return defaultValue
		}

		return n
	default:
		return defaultValue
	}
}
