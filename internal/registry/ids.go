package registry

import "sort"

// allocator hands out non-negative integer IDs, reusing released IDs
// lowest-first before issuing fresh ones.
type allocator struct {
	next int   // one past the highest ID ever issued
	free []int // released IDs, kept sorted ascending
}

func newAllocator() *allocator {
	return &allocator{}
}

// nextID returns the smallest available ID: the lowest released one if any,
// otherwise one past the current maximum.
func (a *allocator) nextID() int {
	if len(a.free) > 0 {
		id := a.free[0]
		a.free = a.free[1:]
		return id
	}
	id := a.next
	a.next++
	return id
}

// release returns an ID to the reusable pool. IDUndefined and IDs never
// issued are ignored.
func (a *allocator) release(id int) {
	if id < 0 || id >= a.next {
		return
	}
	idx := sort.SearchInts(a.free, id)
	if idx < len(a.free) && a.free[idx] == id {
		return
	}
	a.free = append(a.free, 0)
	copy(a.free[idx+1:], a.free[idx:])
	a.free[idx] = id
}
