package specs

import "github.com/zjrosen/curator/internal/registry"

// Manager is the asset spec registry: a container specialized to Spec
// records.
type Manager = registry.Container[Spec]

// NewManager builds the asset spec registry over the given document reader.
// The copy dispatch table is populated here, once, for every concrete type
// this specialization manages.
func NewManager(reader registry.DocumentReader) *Manager {
	copies := registry.CopyTable[Spec]{
		ClassSolid:     copySolidSpec,
		ClassPrimitive: copyPrimitiveSpec,
	}
	return registry.NewContainer[Spec]("asset spec", copies, bridge{}, reader)
}
