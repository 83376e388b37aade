package specs

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/zjrosen/curator/internal/registry"
)

// Solid spec errors
var (
	ErrMissingRenderAsset = errors.New("solid spec requires a render asset")
	ErrNegativeMass       = errors.New("solid spec mass cannot be negative")
	ErrNonPositiveScale   = errors.New("solid spec scale components must be positive")
)

// SolidSpec describes a mesh-backed asset: where its render asset lives and
// the physical attributes instances of it should carry.
type SolidSpec struct {
	registry.Base

	RenderAsset string
	Scale       [3]float64
	Mass        float64
	Friction    float64
	Tags        []string
	Attributes  map[string]string
}

// NewSolidSpec creates a default-valued solid spec with the given handle.
func NewSolidSpec(handle string) *SolidSpec {
	s := &SolidSpec{
		Base:     registry.NewBase(ClassSolid),
		Scale:    [3]float64{1, 1, 1},
		Friction: 0.5,
	}
	s.SetHandle(handle)
	return s
}

// Validate reports whether the spec is semantically usable.
func (s *SolidSpec) Validate() error {
	if s.RenderAsset == "" {
		return ErrMissingRenderAsset
	}
	if s.Mass < 0 {
		return ErrNegativeMass
	}
	for _, v := range s.Scale {
		if v <= 0 {
			return fmt.Errorf("%w: %v", ErrNonPositiveScale, s.Scale)
		}
	}
	return nil
}

// Doc renders the spec as a generic document.
func (s *SolidSpec) Doc() map[string]any {
	doc := map[string]any{
		"type":         ClassSolid,
		"handle":       s.GetHandle(),
		"id":           s.GetID(),
		"render_asset": s.RenderAsset,
		"scale":        s.Scale[:],
		"mass":         s.Mass,
		"friction":     s.Friction,
	}
	if len(s.Tags) > 0 {
		doc["tags"] = s.Tags
	}
	if len(s.Attributes) > 0 {
		doc["attributes"] = s.Attributes
	}
	return doc
}

// copySolidSpec deep-copies a solid spec, preserving its concrete type.
func copySolidSpec(orig Spec) Spec {
	src := orig.(*SolidSpec)
	dup := *src
	dup.Tags = slices.Clone(src.Tags)
	dup.Attributes = maps.Clone(src.Attributes)
	return &dup
}
