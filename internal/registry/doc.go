// Package registry implements a generic in-memory registry that owns,
// names, and life-cycles polymorphic managed objects: configuration and
// attribute records identified by a human-readable handle and a stable
// integer ID.
//
// # Core Types
//
// ManagedObject is the capability set every stored record provides; Base is
// the embeddable implementation concrete types build on. Container[T] is
// the public operation surface for a specialization whose records share the
// base type T: create (from a document file, a locator, or the default
// template), register, fetch by handle or ID, and remove by handle, ID, or
// substring query.
//
// # Ownership
//
// The container owns the canonical copy of every registered object. Every
// insertion stores a dispatch-copy of the caller's object, and every fetch
// intended for mutation returns a fresh dispatch-copy, so no caller ever
// holds an alias into the container's internal storage. The
// GetObjectByHandle/GetObjectByID accessors return the internal copy for
// inspection prior to building dependent constructs; ordinary callers
// should use the Copy variants.
//
// # Polymorphic copying
//
// A dispatch-copy is a deep, subtype-preserving duplication performed
// through the specialization's CopyTable, keyed by each object's class key.
// The table is built once at construction; a lookup miss is a wiring bug in
// the owning specialization and panics.
//
// # IDs and handles
//
// Handles are unique among registered objects. IDs are assigned on first
// registration of a handle, preserved across overwriting re-registrations,
// and returned to a lowest-first reuse pool on removal. Handle and ID stay
// mutually derivable at all times.
//
// # Concurrency
//
// The package is designed for single-threaded, synchronous use and takes no
// locks. An adaptation to concurrent use needs one exclusive (or
// single-writer) lock guarding the store, handle/ID maps, free-ID pool, and
// protected sets together, since insert and remove touch all of them as one
// logical unit; ID allocation and release must be linearized with insert
// and remove. Copies handed to callers are independently owned and need no
// lock.
package registry
