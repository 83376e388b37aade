// Package specs is the concrete registry specialization for declarative
// asset spec records. It supplies the copy dispatch table and the document
// construction bridge the generic container requires, and defines the
// concrete record types the registry manages. The records are pure
// configuration; nothing here renders or simulates anything.
package specs

import "github.com/zjrosen/curator/internal/registry"

// Class keys for the concrete spec types managed here.
const (
	ClassSolid     = "solid"
	ClassPrimitive = "primitive"
)

// Spec is the base type of every record managed by this specialization.
type Spec interface {
	registry.ManagedObject

	// Validate reports whether the record is semantically usable.
	// Registration is rejected for invalid records unless forced.
	Validate() error

	// Doc renders the record as a generic document, the inverse of what
	// the construction bridge consumes.
	Doc() map[string]any
}
