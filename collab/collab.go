// Package collab names the external collaborator interfaces consumed by
// downstream users of this module (never by the core itself) and a
// lightweight registry so a caller can wire implementations by name
// without this module importing them.
package collab

import (
	"fmt"
	"sync"
)

// Normalizer performs text normalization (case conversion, accent,
// whitespace, or quote normalization) external to parsing.
type Normalizer interface {
	Normalize(s string) (string, error)
}

// RecordValidator validates one record, expressed as a column-name-to-cell
// mapping, returning pass/fail plus a list of failure descriptions.
type RecordValidator interface {
	Validate(record map[string]string) (ok bool, errs []string)
}

// RandomGenerator produces a random text value, for callers that need to
// synthesize data; never consumed by the core.
type RandomGenerator interface {
	Next() (string, error)
}

// Registry is a minimal, name-keyed collaborator registry. Unlike a
// reflection-based DI container, it holds plain `any` values under string
// keys the caller chooses, and performs no type discovery.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Register attaches value under name, replacing any prior entry.
func (r *Registry) Register(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = value
}

// Normalizer looks up name and type-asserts it to Normalizer.
func (r *Registry) Normalizer(name string) (Normalizer, error) {
	v, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	n, ok := v.(Normalizer)
	if !ok {
		return nil, fmt.Errorf("collab: %q is not a Normalizer", name)
	}
	return n, nil
}

// RecordValidator looks up name and type-asserts it to RecordValidator.
func (r *Registry) RecordValidator(name string) (RecordValidator, error) {
	v, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	rv, ok := v.(RecordValidator)
	if !ok {
		return nil, fmt.Errorf("collab: %q is not a RecordValidator", name)
	}
	return rv, nil
}

// RandomGenerator looks up name and type-asserts it to RandomGenerator.
func (r *Registry) RandomGenerator(name string) (RandomGenerator, error) {
	v, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	g, ok := v.(RandomGenerator)
	if !ok {
		return nil, fmt.Errorf("collab: %q is not a RandomGenerator", name)
	}
	return g, nil
}

func (r *Registry) lookup(name string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("collab: no collaborator registered under %q", name)
	}
	return v, nil
}
