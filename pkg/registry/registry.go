package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/physq/pkg/errors"
)

// Registry maps names to items. It is safe for concurrent use and can be
// frozen once populated.
type Registry[T any] interface {
	// Register rejects empty and duplicate names, and everything once frozen.
	Register(name string, item T) error

	// Get returns NOT_FOUND for unknown names.
	Get(name string) (T, error)

	// Lookup retrieves an item without building an error for misses
	Lookup(name string) (T, bool)

	// List returns the names in sorted order.
	List() []string

	// Each calls fn for every item in name order until fn returns false
	Each(fn func(name string, item T) bool)

	Has(name string) bool

	Count() int

	// Version increases by one on every successful registration
	Version() uint64

	// Freeze makes every later Register fail with REGISTRY_FROZEN.
	Freeze()

	Frozen() bool
}

type registry[T any] struct {
	mu      sync.RWMutex
	items   map[string]T
	version uint64
	frozen  bool
}

// New returns an empty, unfrozen registry.
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.Newf(errors.ErrRegistryFrozen, "cannot register '%s': registry is frozen", name)
	}

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	r.items[name] = item
	r.version++
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	item, exists := r.Lookup(name)
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	return item, nil
}

func (r *registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	return item, exists
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Each iterates over a snapshot, so fn may call back into the registry.
func (r *registry[T]) Each(fn func(name string, item T) bool) {
	names := r.List()

	r.mu.RLock()
	snapshot := make([]T, len(names))
	for i, name := range names {
		snapshot[i] = r.items[name]
	}
	r.mu.RUnlock()

	for i, name := range names {
		if !fn(name, snapshot[i]) {
			return
		}
	}
}

func (r *registry[T]) Has(name string) bool {
	_, exists := r.Lookup(name)
	return exists
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

func (r *registry[T]) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.version
}

func (r *registry[T]) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen = true
}

func (r *registry[T]) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.frozen
}

// MustRegister panics on failure. Built-in tables use it.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

func MustGet[T any](reg Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}
