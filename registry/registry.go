package registry

import (
	"sort"
	"strconv"
	"sync"
)

// NotFoundError is returned when a key has no current registration.
//
// It carries the missing key for diagnostics. It is the only failure mode of
// the untyped retrieval path: Register cannot fail, and Get either returns
// the registered instance or this error.
type NotFoundError struct{ Key string }

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: registry: no service registered under "db"
	return "registry: no service registered under " + strconv.Quote(e.Key)
}

// DuplicateKeyError is returned by RegisterOnce when the key is already taken.
type DuplicateKeyError struct{ Key string }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: registry: key "db" already registered
	return "registry: key " + strconv.Quote(e.Key) + " already registered"
}

// Registry is a keyed store of capability instances.
//
// It maps string keys to opaque values so that consumers of a capability
// ("a database", "an email sender") can be decoupled from the concrete
// instance providing it. The registry performs no type checking on retrieval;
// interpreting the stored value is the caller's job (see As / TryAs for the
// typed helpers).
//
// A Registry is an explicit value constructed by the caller, not ambient
// process state. Tests can create independent registries without cross-test
// interference.
//
// All operations serialize under an internal lock, so a Registry may be
// shared across goroutines. It holds non-owning references: callers manage
// the lifecycle of whatever they register, and there is no removal operation.
type Registry struct {
	mu    sync.RWMutex
	items map[string]any
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{items: map[string]any{}}
}

// Register inserts or replaces the instance stored under key and returns the
// registry for chaining.
//
// Registration is last-write-wins: a later Register under the same key fully
// replaces the earlier value. It never fails. Use RegisterOnce when silent
// replacement should be an error instead.
func (r *Registry) Register(key string, instance any) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = instance
	return r
}

// RegisterOnce inserts the instance under key, or returns DuplicateKeyError
// if the key is already taken. The existing registration is left untouched
// on failure.
func (r *Registry) RegisterOnce(key string, instance any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[key]; exists {
		return DuplicateKeyError{Key: key}
	}
	r.items[key] = instance
	return nil
}

// Get returns the instance registered under key.
//
// A missing key is a contract failure, not a silent default: Get returns
// NotFoundError carrying the key. The returned value is exactly the
// registered instance, never a copy.
func (r *Registry) Get(key string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	if !ok {
		return nil, NotFoundError{Key: key}
	}
	return v, nil
}

// Lookup returns the instance registered under key if present (no error).
func (r *Registry) Lookup(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	return v, ok
}

// MustGet returns the instance or panics with NotFoundError.
// Useful in examples/tests where a missing key should fail fast.
func (r *Registry) MustGet(key string) any {
	v, err := r.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether key currently has a registration.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[key]
	return ok
}

// Len returns the number of current registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Keys returns the registered keys in sorted order.
//
// Insertion order is not meaningful to the registry; sorting keeps the
// output deterministic for callers that print or compare it.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of the registry.
//
// Registered instances are shared; the key map is copied, so registrations
// on the clone do not affect the original (and vice versa).
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := &Registry{items: make(map[string]any, len(r.items))}
	for k, v := range r.items {
		cp.items[k] = v
	}
	return cp
}
