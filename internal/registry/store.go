package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zjrosen/curator/internal/log"
)

// store owns the canonical copy of every registered object, keyed by
// handle. It enforces the protected-deletion policy and hosts the optional
// default-object template. Only the Container reaches into it; callers only
// ever see copies.
type store[T ManagedObject] struct {
	objects map[string]T
	ledger  *ledger
	copies  CopyTable[T]

	defaultObj T
	hasDefault bool

	undeletable map[string]struct{}
	userLocked  map[string]struct{}

	// kind is the human-readable object type used in log messages,
	// e.g. "asset spec".
	kind string
}

func newStore[T ManagedObject](kind string, copies CopyTable[T]) *store[T] {
	return &store[T]{
		objects:     make(map[string]T),
		ledger:      newLedger(),
		copies:      copies,
		undeletable: make(map[string]struct{}),
		userLocked:  make(map[string]struct{}),
		kind:        kind,
	}
}

// insert stores a dispatch-copy of obj under handle and binds handle <-> id.
// The caller's obj stays independently mutable; it gets the assigned handle
// and ID written back so the caller can observe them.
func (s *store[T]) insert(obj T, handle string) int {
	obj.SetHandle(handle)
	// Existing handle keeps its ID; a new handle gets the lowest available.
	id := s.ledger.idOrAllocate(handle)
	obj.SetID(id)

	stored := s.copies.copy(obj)
	s.objects[handle] = stored
	s.ledger.bind(handle, id)
	return id
}

// remove evicts the object stored under handle, releases its ID, and
// returns the evicted copy (ownership transfers to the caller). The three
// failure checks run strictly before any mutation, in order: absent,
// undeletable, user-locked.
func (s *store[T]) remove(handle, src string) (T, error) {
	var zero T
	obj, exists := s.objects[handle]
	if !exists {
		log.Info(log.CatStore, "unable to remove managed object",
			"src", src, "type", s.kind, "handle", handle, "reason", "does not exist")
		return zero, fmt.Errorf("%w: %q", ErrNotFound, handle)
	}
	if _, ok := s.undeletable[handle]; ok {
		log.Info(log.CatStore, "unable to remove managed object",
			"src", src, "type", s.kind, "handle", handle, "reason", "required, undeletable")
		return zero, fmt.Errorf("%w: %q", ErrUndeletable, handle)
	}
	if _, ok := s.userLocked[handle]; ok {
		log.Info(log.CatStore, "unable to remove managed object",
			"src", src, "type", s.kind, "handle", handle, "reason", "user-locked, unlock first")
		return zero, fmt.Errorf("%w: %q", ErrUserLocked, handle)
	}

	delete(s.objects, handle)
	s.ledger.release(obj.GetID())
	s.ledger.unbind(handle)
	return obj, nil
}

// get returns the stored canonical copy itself.
func (s *store[T]) get(handle string) (T, bool) {
	obj, ok := s.objects[handle]
	return obj, ok
}

// getCopy returns an independent dispatch-copy of the stored object.
func (s *store[T]) getCopy(handle string) (T, bool) {
	var zero T
	obj, ok := s.objects[handle]
	if !ok {
		return zero, false
	}
	return s.copies.copy(obj), true
}

func (s *store[T]) has(handle string) bool {
	_, ok := s.objects[handle]
	return ok
}

// setDefault installs a dispatch-copy of obj as the seed template.
func (s *store[T]) setDefault(obj T) {
	s.defaultObj = s.copies.copy(obj)
	s.hasDefault = true
}

func (s *store[T]) clearDefault() {
	var zero T
	s.defaultObj = zero
	s.hasDefault = false
}

// seedFromDefault dispatch-copies the default template, assigns it
// newHandle, and returns it unregistered. Fails if no default is installed.
func (s *store[T]) seedFromDefault(newHandle string) (T, error) {
	var zero T
	if !s.hasDefault {
		return zero, ErrNoDefaultObject
	}
	obj := s.copies.copy(s.defaultObj)
	obj.SetHandle(newHandle)
	return obj, nil
}

// handles returns all registered handles, sorted.
func (s *store[T]) handles() []string {
	res := make([]string, 0, len(s.objects))
	for h := range s.objects {
		res = append(res, h)
	}
	sort.Strings(res)
	return res
}

// handlesBySubstring returns the sorted handles containing substr, or, if
// contains is false, the handles excluding it. An empty substr with
// contains=true matches everything.
func (s *store[T]) handlesBySubstring(substr string, contains bool) []string {
	res := make([]string, 0, len(s.objects))
	for h := range s.objects {
		if strings.Contains(h, substr) == contains {
			res = append(res, h)
		}
	}
	sort.Strings(res)
	return res
}
