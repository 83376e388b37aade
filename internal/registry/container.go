package registry

import (
	"fmt"
	"reflect"

	"github.com/zjrosen/curator/internal/log"
)

// DocumentReader supplies parsed structured documents to the container. The
// container never parses text itself; any read or parse failure aborts
// construction with no side effects on the store.
type DocumentReader interface {
	Read(path string) (map[string]any, error)
}

// Bridge is the document construction hook each specialization supplies.
// It is the only place concrete object schemas are known.
type Bridge[T ManagedObject] interface {
	// BuildFromDocument constructs a concrete object from an
	// already-parsed document. locator (typically the source path) becomes
	// the new object's handle. Returns an error wrapping ErrParseFailure
	// if the document cannot be interpreted as the target schema.
	BuildFromDocument(locator string, doc map[string]any) (T, error)

	// FinalizeRegistration may reject a registration on semantic grounds
	// (e.g. schema validation). force signals the specialization to bypass
	// its own conditional checks.
	FinalizeRegistration(obj T, handle string, force bool) error
}

// UpdateHook runs after a successful RegisterObjectAndUpdate, so an
// external consumer can refresh constructs built from the prior version of
// the object.
type UpdateHook[T ManagedObject] func(obj T)

// Container is the public operation surface of the registry: it creates,
// registers, fetches, and removes managed objects of a specialization's
// base type T. All objects handed back to callers are copies; the
// container's own stored copy is never aliased outward.
//
// A Container is designed for single-threaded, synchronous use and takes no
// locks. If adapted to a concurrent environment, one exclusive lock must
// guard the store's objects, handle/ID maps, free-ID pool, and protected
// sets together, since insert and remove touch all of them as one logical
// unit; copies already handed out need no lock.
type Container[T ManagedObject] struct {
	store      *store[T]
	bridge     Bridge[T]
	reader     DocumentReader
	updateHook UpdateHook[T]
	kind       string
}

// NewContainer builds a container for a specialization. kind is the
// human-readable object type used in diagnostics; copies must cover every
// concrete type the specialization manages.
func NewContainer[T ManagedObject](kind string, copies CopyTable[T], bridge Bridge[T], reader DocumentReader) *Container[T] {
	return &Container[T]{
		store:  newStore[T](kind, copies),
		bridge: bridge,
		reader: reader,
		kind:   kind,
	}
}

// SetUpdateHook installs the post-update hook invoked by
// RegisterObjectAndUpdate.
func (c *Container[T]) SetUpdateHook(hook UpdateHook[T]) {
	c.updateHook = hook
}

// === Creation ===

// CreateObject creates a managed object from locator, interpreted as a
// source document path. If the locator cannot be read as a document, the
// object is seeded from the installed default object instead. With register
// true the object is also added to the registry; the returned object is the
// caller-owned instance, not the stored copy.
func (c *Container[T]) CreateObject(locator string, register bool) (T, error) {
	var zero T
	doc, err := c.reader.Read(locator)
	if err != nil {
		log.Debug(log.CatRegistry, "locator not readable as document, seeding from default",
			"type", c.kind, "locator", locator)
		obj, seedErr := c.store.seedFromDefault(locator)
		if seedErr != nil {
			log.ErrorErr(log.CatRegistry, "unable to create managed object", err,
				"type", c.kind, "locator", locator)
			return zero, fmt.Errorf("create %s %q: %w", c.kind, locator, seedErr)
		}
		return c.postCreateRegister(obj, register)
	}
	obj, err := c.bridge.BuildFromDocument(locator, doc)
	if err != nil {
		log.ErrorErr(log.CatRegistry, "unable to build managed object from document", err,
			"type", c.kind, "locator", locator)
		return zero, err
	}
	return c.postCreateRegister(obj, register)
}

// CreateDefaultObject creates an unregistered object seeded from the
// installed default, with name as its handle. Intended for editing, so
// register defaults to false at call sites. Fails if no default object is
// installed.
func (c *Container[T]) CreateDefaultObject(name string, register bool) (T, error) {
	var zero T
	obj, err := c.store.seedFromDefault(name)
	if err != nil {
		log.ErrorErr(log.CatRegistry, "unable to create default managed object", err,
			"type", c.kind, "name", name)
		return zero, err
	}
	return c.postCreateRegister(obj, register)
}

// CreateObjectFromFile reads and parses the structured document at path and
// builds the concrete object through the construction bridge. On read or
// parse failure it logs and returns an error with no side effects on the
// store.
func (c *Container[T]) CreateObjectFromFile(path string, register bool) (T, error) {
	var zero T
	doc, err := c.reader.Read(path)
	if err != nil {
		log.ErrorErr(log.CatRegistry, "failure reading document", err,
			"type", c.kind, "path", path)
		return zero, fmt.Errorf("%w: %s", ErrParseFailure, path)
	}
	obj, err := c.bridge.BuildFromDocument(path, doc)
	if err != nil {
		log.ErrorErr(log.CatRegistry, "unable to build managed object from document", err,
			"type", c.kind, "path", path)
		return zero, err
	}
	return c.postCreateRegister(obj, register)
}

// postCreateRegister registers obj if requested. The caller-owned input
// object is returned only if registration succeeded.
func (c *Container[T]) postCreateRegister(obj T, register bool) (T, error) {
	if !register {
		return obj, nil
	}
	var zero T
	if _, err := c.RegisterObject(obj, obj.GetHandle(), false); err != nil {
		return zero, err
	}
	return obj, nil
}

// === Registration ===

// RegisterObject adds a copy of obj to the registry under handle, or under
// obj's own handle when handle is empty. The specialization's finalize step
// may reject the registration unless force is set. Returns the object's ID,
// or IDUndefined on failure. Registering an existing handle overwrites the
// stored copy and reuses its ID.
func (c *Container[T]) RegisterObject(obj T, handle string, force bool) (int, error) {
	if isNil(obj) {
		log.Error(log.CatRegistry, "invalid (nil) managed object passed to registration",
			"type", c.kind)
		return IDUndefined, ErrNilObject
	}
	if handle == "" {
		handle = obj.GetHandle()
	}
	if handle == "" {
		log.Error(log.CatRegistry, "no valid handle specified for managed object to register",
			"type", c.kind)
		return IDUndefined, ErrInvalidHandle
	}
	if err := c.bridge.FinalizeRegistration(obj, handle, force); err != nil {
		log.ErrorErr(log.CatRegistry, "registration rejected", err,
			"type", c.kind, "handle", handle)
		return IDUndefined, fmt.Errorf("register %s %q: %w", c.kind, handle, err)
	}
	return c.store.insert(obj, handle), nil
}

// RegisterObjectAndUpdate re-registers obj under its existing handle,
// replacing the stored copy while preserving its ID, then invokes the
// update hook so dependents built from the prior version can refresh.
func (c *Container[T]) RegisterObjectAndUpdate(obj T) (int, error) {
	if isNil(obj) {
		log.Error(log.CatRegistry, "invalid (nil) managed object passed to update",
			"type", c.kind)
		return IDUndefined, ErrNilObject
	}
	id, err := c.RegisterObject(obj, obj.GetHandle(), false)
	if err != nil {
		return IDUndefined, err
	}
	if c.updateHook != nil {
		c.updateHook(obj)
	}
	return id, nil
}

// === Fetching ===

// GetObjectByID returns the registry's internal copy of the object with the
// given ID. Do not mutate and re-store it without re-registering; ordinary
// callers should use GetObjectCopyByID.
func (c *Container[T]) GetObjectByID(id int) (T, error) {
	var zero T
	handle := c.store.ledger.resolveID(id)
	if !c.checkExistsWithMessage(handle, "GetObjectByID") {
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	obj, _ := c.store.get(handle)
	return obj, nil
}

// GetObjectByHandle returns the registry's internal copy of the object with
// the given handle. Do not mutate and re-store it without re-registering;
// ordinary callers should use GetObjectCopyByHandle.
func (c *Container[T]) GetObjectByHandle(handle string) (T, error) {
	var zero T
	if !c.checkExistsWithMessage(handle, "GetObjectByHandle") {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, handle)
	}
	obj, _ := c.store.get(handle)
	return obj, nil
}

// GetObjectCopyByID returns an independent copy of the object with the
// given ID, safe for caller mutation.
func (c *Container[T]) GetObjectCopyByID(id int) (T, error) {
	var zero T
	handle := c.store.ledger.resolveID(id)
	if !c.checkExistsWithMessage(handle, "GetObjectCopyByID") {
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	obj, _ := c.store.getCopy(handle)
	return obj, nil
}

// GetObjectCopyByHandle returns an independent copy of the object with the
// given handle, safe for caller mutation.
func (c *Container[T]) GetObjectCopyByHandle(handle string) (T, error) {
	var zero T
	if !c.checkExistsWithMessage(handle, "GetObjectCopyByHandle") {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, handle)
	}
	obj, _ := c.store.getCopy(handle)
	return obj, nil
}

// GetObjectIDByHandle returns the ID of the registered object with the
// given handle, or IDUndefined. Pure lookup; never allocates.
func (c *Container[T]) GetObjectIDByHandle(handle string) int {
	id := c.store.ledger.resolveHandle(handle)
	if id == IDUndefined {
		log.Error(log.CatRegistry, "no managed object with handle exists",
			"type", c.kind, "handle", handle)
	}
	return id
}

// GetObjectHandleByID returns the handle of the registered object with the
// given ID, or "".
func (c *Container[T]) GetObjectHandleByID(id int) string {
	return c.store.ledger.resolveID(id)
}

// === Removal ===

// RemoveObjectByID removes the object with the given ID, returning the
// evicted copy. IDs of removed objects become reusable.
func (c *Container[T]) RemoveObjectByID(id int) (T, error) {
	var zero T
	handle := c.store.ledger.resolveID(id)
	if handle == "" {
		log.Info(log.CatRegistry, "unable to remove managed object",
			"src", "RemoveObjectByID", "type", c.kind, "id", id, "reason", "does not exist")
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return c.store.remove(handle, "RemoveObjectByID")
}

// RemoveObjectByHandle removes the object with the given handle, returning
// the evicted copy.
func (c *Container[T]) RemoveObjectByHandle(handle string) (T, error) {
	return c.store.remove(handle, "RemoveObjectByHandle")
}

// RemoveObjectsBySubstring removes every non-protected object whose handle
// contains substr (or, with contains false, excludes it) and returns the
// evicted copies. An empty substr with contains true removes everything
// removable.
func (c *Container[T]) RemoveObjectsBySubstring(substr string, contains bool) []T {
	var res []T
	for _, handle := range c.store.handlesBySubstring(substr, contains) {
		obj, err := c.store.remove(handle, "RemoveObjectsBySubstring")
		if err != nil {
			continue
		}
		res = append(res, obj)
	}
	return res
}

// RemoveAllObjects removes every object not marked undeletable or
// user-locked and returns the evicted copies.
func (c *Container[T]) RemoveAllObjects() []T {
	return c.RemoveObjectsBySubstring("", true)
}

// === Default object ===

// SetDefaultObject installs a copy of obj as the seed template used by
// CreateDefaultObject.
func (c *Container[T]) SetDefaultObject(obj T) {
	if isNil(obj) {
		log.Error(log.CatRegistry, "invalid (nil) managed object passed as default",
			"type", c.kind)
		return
	}
	c.store.setDefault(obj)
}

// ClearDefaultObject clears the seed template.
func (c *Container[T]) ClearDefaultObject() {
	c.store.clearDefault()
}

// === Protection ===

// SetUndeletable marks handle as system-protected; it can never be removed.
func (c *Container[T]) SetUndeletable(handle string) error {
	if !c.checkExistsWithMessage(handle, "SetUndeletable") {
		return fmt.Errorf("%w: %q", ErrNotFound, handle)
	}
	c.store.undeletable[handle] = struct{}{}
	return nil
}

// SetLock locks or unlocks handle against removal at the caller's request.
func (c *Container[T]) SetLock(handle string, lock bool) error {
	if !c.checkExistsWithMessage(handle, "SetLock") {
		return fmt.Errorf("%w: %q", ErrNotFound, handle)
	}
	if lock {
		c.store.userLocked[handle] = struct{}{}
	} else {
		delete(c.store.userLocked, handle)
	}
	return nil
}

// SetLockBySubstring applies SetLock to every handle matching the substring
// query and returns the handles affected.
func (c *Container[T]) SetLockBySubstring(lock bool, substr string, contains bool) []string {
	handles := c.store.handlesBySubstring(substr, contains)
	for _, h := range handles {
		if lock {
			c.store.userLocked[h] = struct{}{}
		} else {
			delete(c.store.userLocked, h)
		}
	}
	return handles
}

// === Queries ===

// HasObject reports whether an object is registered under handle.
func (c *Container[T]) HasObject(handle string) bool {
	return c.store.has(handle)
}

// HasObjectByID reports whether an object is registered with the given ID.
func (c *Container[T]) HasObjectByID(id int) bool {
	return c.store.ledger.resolveID(id) != ""
}

// NumObjects returns the number of registered objects.
func (c *Container[T]) NumObjects() int {
	return len(c.store.objects)
}

// Handles returns all registered handles, sorted.
func (c *Container[T]) Handles() []string {
	return c.store.handles()
}

// HandlesBySubstring returns the sorted handles containing substr, or, with
// contains false, the handles excluding it.
func (c *Container[T]) HandlesBySubstring(substr string, contains bool) []string {
	return c.store.handlesBySubstring(substr, contains)
}

// checkExistsWithMessage reports whether handle is registered, logging the
// calling operation on a miss.
func (c *Container[T]) checkExistsWithMessage(handle, src string) bool {
	if handle == "" || !c.store.has(handle) {
		log.Error(log.CatRegistry, "managed object does not exist",
			"src", src, "type", c.kind, "handle", handle)
		return false
	}
	return true
}

// isNil reports whether v is nil directly or through a typed nil pointer,
// which a plain interface comparison would miss.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
