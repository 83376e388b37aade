package specs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/curator/internal/registry"
)

// solidDef is the document shape for a solid spec.
type solidDef struct {
	Type        string            `yaml:"type"`
	RenderAsset string            `yaml:"render_asset"`
	Scale       []float64         `yaml:"scale"`
	Mass        float64           `yaml:"mass"`
	Friction    *float64          `yaml:"friction"`
	Tags        []string          `yaml:"tags"`
	Attributes  map[string]string `yaml:"attributes"`
}

// primitiveDef is the document shape for a primitive spec.
type primitiveDef struct {
	Type       string            `yaml:"type"`
	Kind       string            `yaml:"kind"`
	Dimensions []float64         `yaml:"dimensions"`
	Segments   *int              `yaml:"segments"`
	Tags       []string          `yaml:"tags"`
	Attributes map[string]string `yaml:"attributes"`
}

// bridge implements registry.Bridge for asset specs. It dispatches on the
// document's "type" field to pick the concrete record type.
type bridge struct{}

// BuildFromDocument constructs a concrete spec from a parsed document.
// locator becomes the new spec's handle.
func (bridge) BuildFromDocument(locator string, doc map[string]any) (Spec, error) {
	kind, _ := doc["type"].(string)
	switch kind {
	case ClassSolid:
		return buildSolid(locator, doc)
	case ClassPrimitive:
		return buildPrimitive(locator, doc)
	case "":
		return nil, fmt.Errorf("%w: missing spec type in %s", registry.ErrParseFailure, locator)
	default:
		return nil, fmt.Errorf("%w: unknown spec type %q in %s", registry.ErrParseFailure, kind, locator)
	}
}

// FinalizeRegistration rejects semantically invalid specs unless forced.
func (bridge) FinalizeRegistration(obj Spec, handle string, force bool) error {
	if force {
		return nil
	}
	return obj.Validate()
}

func buildSolid(locator string, doc map[string]any) (Spec, error) {
	var def solidDef
	if err := decode(locator, doc, &def); err != nil {
		return nil, err
	}

	s := NewSolidSpec(locator)
	s.RenderAsset = def.RenderAsset
	if def.Scale != nil {
		scale, err := vec3(locator, "scale", def.Scale)
		if err != nil {
			return nil, err
		}
		s.Scale = scale
	}
	s.Mass = def.Mass
	if def.Friction != nil {
		s.Friction = *def.Friction
	}
	s.Tags = def.Tags
	s.Attributes = def.Attributes
	return s, nil
}

func buildPrimitive(locator string, doc map[string]any) (Spec, error) {
	var def primitiveDef
	if err := decode(locator, doc, &def); err != nil {
		return nil, err
	}

	p := NewPrimitiveSpec(locator, def.Kind)
	if def.Dimensions != nil {
		dims, err := vec3(locator, "dimensions", def.Dimensions)
		if err != nil {
			return nil, err
		}
		p.Dimensions = dims
	}
	if def.Segments != nil {
		p.Segments = *def.Segments
	}
	p.Tags = def.Tags
	p.Attributes = def.Attributes
	return p, nil
}

// decode round-trips the generic document through YAML into the typed def.
// Wrong-typed fields surface here as a parse failure.
func decode(locator string, doc map[string]any, out any) error {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", registry.ErrParseFailure, locator, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", registry.ErrParseFailure, locator, err)
	}
	return nil
}

// vec3 checks a document list field has exactly three components.
func vec3(locator, field string, vals []float64) ([3]float64, error) {
	if len(vals) != 3 {
		return [3]float64{}, fmt.Errorf("%w: %s: field %q needs 3 components, got %d",
			registry.ErrParseFailure, locator, field, len(vals))
	}
	return [3]float64{vals[0], vals[1], vals[2]}, nil
}
