package registry

import "fmt"

// CopyFunc produces a deep, subtype-preserving duplicate of a managed
// object: the result must be the same concrete type as the input with no
// shared mutable state (copy constructor semantics, not a base-type shallow
// copy).
type CopyFunc[T ManagedObject] func(T) T

// CopyTable maps class keys to copy functions. Each specialization builds
// its table once, at construction, covering every concrete type it manages;
// the table is never mutated afterward.
type CopyTable[T ManagedObject] map[string]CopyFunc[T]

// copy duplicates obj through the function registered for its class key.
// A missing key means the owning specialization failed to populate its
// table for a type it claims to manage - a construction-time wiring bug,
// so it fails loudly rather than degrading to a shallow copy.
func (ct CopyTable[T]) copy(obj T) T {
	key := obj.GetClassKey()
	fn, ok := ct[key]
	if !ok {
		panic(fmt.Sprintf("registry: no copy function registered for class key %q", key))
	}
	return fn(obj)
}
