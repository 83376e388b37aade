package specs

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/zjrosen/curator/internal/registry"
)

// Primitive spec errors
var (
	ErrUnknownPrimitiveKind  = errors.New("unknown primitive kind")
	ErrNonPositiveDimensions = errors.New("primitive dimensions must be positive")
	ErrTooFewSegments        = errors.New("round primitives need at least 3 segments")
)

// Primitive kinds.
const (
	KindBox      = "box"
	KindSphere   = "sphere"
	KindCylinder = "cylinder"
	KindCone     = "cone"
	KindCapsule  = "capsule"
)

// roundKinds are the primitive kinds tessellated from segments.
var roundKinds = map[string]bool{
	KindSphere:   true,
	KindCylinder: true,
	KindCone:     true,
	KindCapsule:  true,
}

// PrimitiveSpec describes a procedurally generated primitive asset.
type PrimitiveSpec struct {
	registry.Base

	Kind       string
	Dimensions [3]float64
	Segments   int
	Tags       []string
	Attributes map[string]string
}

// NewPrimitiveSpec creates a default-valued primitive spec with the given
// handle and kind.
func NewPrimitiveSpec(handle, kind string) *PrimitiveSpec {
	p := &PrimitiveSpec{
		Base:       registry.NewBase(ClassPrimitive),
		Kind:       kind,
		Dimensions: [3]float64{1, 1, 1},
		Segments:   16,
	}
	p.SetHandle(handle)
	return p
}

// Validate reports whether the spec is semantically usable.
func (p *PrimitiveSpec) Validate() error {
	if p.Kind != KindBox && !roundKinds[p.Kind] {
		return fmt.Errorf("%w: %q", ErrUnknownPrimitiveKind, p.Kind)
	}
	for _, v := range p.Dimensions {
		if v <= 0 {
			return fmt.Errorf("%w: %v", ErrNonPositiveDimensions, p.Dimensions)
		}
	}
	if roundKinds[p.Kind] && p.Segments < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewSegments, p.Segments)
	}
	return nil
}

// Doc renders the spec as a generic document.
func (p *PrimitiveSpec) Doc() map[string]any {
	doc := map[string]any{
		"type":       ClassPrimitive,
		"handle":     p.GetHandle(),
		"id":         p.GetID(),
		"kind":       p.Kind,
		"dimensions": p.Dimensions[:],
		"segments":   p.Segments,
	}
	if len(p.Tags) > 0 {
		doc["tags"] = p.Tags
	}
	if len(p.Attributes) > 0 {
		doc["attributes"] = p.Attributes
	}
	return doc
}

// copyPrimitiveSpec deep-copies a primitive spec, preserving its concrete
// type.
func copyPrimitiveSpec(orig Spec) Spec {
	src := orig.(*PrimitiveSpec)
	dup := *src
	dup.Tags = slices.Clone(src.Tags)
	dup.Attributes = maps.Clone(src.Attributes)
	return &dup
}
