// Package source provides raw-configuration source abstractions and
// implementations. Sources assemble the untyped nested map consumed by
// the resolver; they do not coerce types, so every value flows through
// the resolver's fallback semantics regardless of where it came from.
package source

import (
	"webadmin-core/internal/config/resolver"
)

// Source is the interface for raw configuration sources
type Source interface {
	// Name returns the source name for logging and error messages
	Name() string

	// Priority returns the source priority (higher = more important)
	Priority() int

	// LoadInto merges this source's values into the raw configuration,
	// overwriting values set by lower-priority sources
	LoadInto(raw resolver.Raw) error
}

// Source priority constants. Defaults are not a source here: they are
// the resolver's fallbacks, applied to whatever keys remain unset.
const (
	PriorityYAML   = 1
	PriorityDotEnv = 2
	PriorityEnv    = 3
)

// ByPriority implements sort.Interface for []Source based on Priority
type ByPriority []Source

func (a ByPriority) Len() int           { return len(a) }
func (a ByPriority) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByPriority) Less(i, j int) bool { return a[i].Priority() < a[j].Priority() }

// setKey writes a value into a nested section of the raw map, creating
// the section when absent
func setKey(raw resolver.Raw, sectionName, key string, value any) {
	sec, ok := raw[sectionName].(map[string]any)
	if !ok {
		sec = make(map[string]any)
		raw[sectionName] = sec
	}
	sec[key] = value
}
