package registry

import "strings"

// IDUndefined denotes an absent or unassigned object ID. It is never
// allocated to a live object.
const IDUndefined = -1

// ManagedObject is the capability set every record stored in a Container
// must provide. Concrete types typically embed Base rather than
// implementing these directly.
type ManagedObject interface {
	// GetHandle returns the human-readable name, unique among registered
	// objects.
	GetHandle() string

	// SetHandle assigns the handle. Assigning a handle containing a path
	// separator also derives the object's file directory.
	SetHandle(handle string)

	// GetID returns the object's registry ID. Meaningless until the object
	// has been registered.
	GetID() int

	// SetID assigns the registry ID. Called by the container on
	// registration; user code should not need it.
	SetID(id int)

	// GetFileDirectory returns the directory portion of the handle, if the
	// handle encodes one.
	GetFileDirectory() string

	// SetFileDirectory overrides the derived file directory.
	SetFileDirectory(dir string)

	// GetClassKey identifies the concrete type for copy dispatch. It is
	// fixed at construction and never used for business logic.
	GetClassKey() string
}

// Base is an embeddable ManagedObject implementation. The zero value is not
// useful; construct with NewBase so the ID starts undefined.
type Base struct {
	handle        string
	id            int
	fileDirectory string
	classKey      string
}

// NewBase creates a Base with the given class key and an undefined ID.
func NewBase(classKey string) Base {
	return Base{
		id:       IDUndefined,
		classKey: classKey,
	}
}

// GetHandle returns the object's handle.
func (b *Base) GetHandle() string { return b.handle }

// SetHandle assigns the handle and, when it contains a path separator,
// derives the file directory from it.
func (b *Base) SetHandle(handle string) {
	b.handle = handle
	if idx := strings.LastIndex(handle, "/"); idx >= 0 {
		b.fileDirectory = handle[:idx]
	}
}

// GetID returns the object's registry ID.
func (b *Base) GetID() int { return b.id }

// SetID assigns the registry ID.
func (b *Base) SetID(id int) { b.id = id }

// GetFileDirectory returns the directory portion of the handle.
func (b *Base) GetFileDirectory() string { return b.fileDirectory }

// SetFileDirectory overrides the derived file directory.
func (b *Base) SetFileDirectory(dir string) { b.fileDirectory = dir }

// GetClassKey returns the class key fixed at construction.
func (b *Base) GetClassKey() string { return b.classKey }

// Compile-time check that Base implements ManagedObject.
var _ ManagedObject = (*Base)(nil)
