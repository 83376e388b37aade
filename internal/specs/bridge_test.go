package specs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/curator/internal/registry"
)

// === Document dispatch ===

func TestBridge_BuildFromDocument_Solid(t *testing.T) {
	doc := map[string]any{
		"type":         ClassSolid,
		"render_asset": "meshes/crate.glb",
		"scale":        []any{2.0, 2.0, 2.0},
		"mass":         4.5,
		"tags":         []any{"wood", "stackable"},
	}

	obj, err := bridge{}.BuildFromDocument("specs/crate.yaml", doc)
	require.NoError(t, err)

	s, ok := obj.(*SolidSpec)
	require.True(t, ok)
	require.Equal(t, "specs/crate.yaml", s.GetHandle())
	require.Equal(t, "meshes/crate.glb", s.RenderAsset)
	require.Equal(t, [3]float64{2, 2, 2}, s.Scale)
	require.Equal(t, 4.5, s.Mass)
	require.Equal(t, []string{"wood", "stackable"}, s.Tags)
	// Friction was absent, so the default survives.
	require.Equal(t, 0.5, s.Friction)
}

func TestBridge_BuildFromDocument_Primitive(t *testing.T) {
	doc := map[string]any{
		"type":       ClassPrimitive,
		"kind":       KindSphere,
		"dimensions": []any{0.5, 0.5, 0.5},
		"segments":   32,
	}

	obj, err := bridge{}.BuildFromDocument("specs/ball.yaml", doc)
	require.NoError(t, err)

	p, ok := obj.(*PrimitiveSpec)
	require.True(t, ok)
	require.Equal(t, KindSphere, p.Kind)
	require.Equal(t, [3]float64{0.5, 0.5, 0.5}, p.Dimensions)
	require.Equal(t, 32, p.Segments)
}

func TestBridge_BuildFromDocument_ZeroFrictionIsKept(t *testing.T) {
	doc := map[string]any{
		"type":         ClassSolid,
		"render_asset": "meshes/ice.glb",
		"friction":     0.0,
	}

	obj, err := bridge{}.BuildFromDocument("ice.yaml", doc)
	require.NoError(t, err)
	require.Equal(t, 0.0, obj.(*SolidSpec).Friction)
}

func TestBridge_BuildFromDocument_MissingType(t *testing.T) {
	_, err := bridge{}.BuildFromDocument("x.yaml", map[string]any{"mass": 1.0})

	require.ErrorIs(t, err, registry.ErrParseFailure)
}

func TestBridge_BuildFromDocument_UnknownType(t *testing.T) {
	_, err := bridge{}.BuildFromDocument("x.yaml", map[string]any{"type": "liquid"})

	require.ErrorIs(t, err, registry.ErrParseFailure)
	require.Contains(t, err.Error(), "liquid")
}

func TestBridge_BuildFromDocument_WrongVectorArity(t *testing.T) {
	doc := map[string]any{
		"type":         ClassSolid,
		"render_asset": "a.glb",
		"scale":        []any{1.0, 2.0},
	}

	_, err := bridge{}.BuildFromDocument("x.yaml", doc)
	require.ErrorIs(t, err, registry.ErrParseFailure)
	require.Contains(t, err.Error(), "scale")
}

func TestBridge_BuildFromDocument_WrongFieldType(t *testing.T) {
	doc := map[string]any{
		"type":         ClassSolid,
		"render_asset": "a.glb",
		"mass":         "heavy",
	}

	_, err := bridge{}.BuildFromDocument("x.yaml", doc)
	require.ErrorIs(t, err, registry.ErrParseFailure)
}

// === Finalize ===

func TestBridge_FinalizeRegistration_RejectsInvalid(t *testing.T) {
	s := NewSolidSpec("crate")

	err := bridge{}.FinalizeRegistration(s, "crate", false)
	require.ErrorIs(t, err, ErrMissingRenderAsset)
}

func TestBridge_FinalizeRegistration_ForceBypassesValidation(t *testing.T) {
	s := NewSolidSpec("crate")

	require.NoError(t, bridge{}.FinalizeRegistration(s, "crate", true))
}
