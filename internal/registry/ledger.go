package registry

import "github.com/zjrosen/curator/internal/log"

// ledger maintains the bidirectional mapping between handles and IDs and
// owns the allocator that backs it. Both directions are updated together;
// no caller ever observes one side changed without the other.
type ledger struct {
	ids      *allocator
	byHandle map[string]int
	byID     map[int]string
}

func newLedger() *ledger {
	return &ledger{
		ids:      newAllocator(),
		byHandle: make(map[string]int),
		byID:     make(map[int]string),
	}
}

// resolveHandle returns the ID bound to handle, or IDUndefined.
func (l *ledger) resolveHandle(handle string) int {
	if id, ok := l.byHandle[handle]; ok {
		return id
	}
	return IDUndefined
}

// resolveID returns the handle bound to id, or "".
func (l *ledger) resolveID(id int) string {
	return l.byID[id]
}

// bind establishes the handle <-> id mapping in both directions.
func (l *ledger) bind(handle string, id int) {
	l.byHandle[handle] = id
	l.byID[id] = handle
}

// unbind removes both directions of the mapping. The ID is not released;
// that is the store's call to make.
func (l *ledger) unbind(handle string) {
	id, ok := l.byHandle[handle]
	if !ok {
		return
	}
	delete(l.byHandle, handle)
	delete(l.byID, id)
}

// idOrAllocate returns the ID already bound to handle, or allocates a fresh
// one without binding it. Binding happens only on actual insertion.
func (l *ledger) idOrAllocate(handle string) int {
	if id, ok := l.byHandle[handle]; ok {
		return id
	}
	id := l.ids.nextID()
	log.Debug(log.CatIDs, "allocated object id", "id", id, "handle", handle)
	return id
}

// release returns an ID to the allocator's reusable pool.
func (l *ledger) release(id int) {
	l.ids.release(id)
}
