package property

import (
	"fmt"
	"sort"

	"config-generator/internal/override"
)

// Field names of a property object.
const (
	FieldType               = "type"
	FieldDefaultValue       = "defaultValue"
	FieldOverrides          = "overrides"
	FieldDescription        = "description"
	FieldAssociatedProperty = "associatedProperty"
)

// Scalar is a property holding a single value of a built-in type.
type Scalar struct {
	common

	tag      Tag
	typeHint string

	defaultValue     any
	overrides        map[string]any
	invalidOverrides []string
}

// NewScalar builds a scalar property from its raw object.
// typeHint is the type name used when tag is TagNone.
//
// A default that cannot be converted fails construction unless the tag is
// optional. Override entries that cannot be converted are skipped and
// reported by InvalidOverrides.
func NewScalar(key string, tag Tag, typeHint string, raw map[string]any) (*Scalar, error) {
	def, err := Convert(tag, raw[FieldDefaultValue])
	if err != nil {
		return nil, fmt.Errorf("property %q default: %w", key, err)
	}

	s := &Scalar{
		common:       commonFrom(key, raw),
		tag:          tag,
		typeHint:     typeHint,
		defaultValue: def,
		overrides:    map[string]any{},
	}

	rawOverrides, _ := raw[FieldOverrides].(map[string]any)
	for k, rv := range rawOverrides {
		v, ok := convert(tag, rv)
		if !ok {
			if tag.Optional() && rv == nil {
				s.overrides[k] = nil
				continue
			}

			s.invalidOverrides = append(s.invalidOverrides, k)

			continue
		}

		s.overrides[k] = v
	}

	sort.Strings(s.invalidOverrides)

	return s, nil
}

// NewSchemeName builds the injected "schemeName" string property.
func NewSchemeName(scheme string) *Scalar {
	return &Scalar{
		common:       common{key: "schemeName"},
		tag:          TagString,
		defaultValue: scheme,
		overrides:    map[string]any{},
	}
}

func commonFrom(key string, raw map[string]any) common {
	c := common{key: key}
	c.description, _ = raw[FieldDescription].(string)
	c.associated, _ = raw[FieldAssociatedProperty].(string)

	return c
}

// Tag returns the declared tag.
func (s *Scalar) Tag() Tag { return s.tag }

// InvalidOverrides lists override keys dropped during construction.
func (s *Scalar) InvalidOverrides() []string { return s.invalidOverrides }

// TypeName implements Property.
func (s *Scalar) TypeName() string {
	if s.tag == TagNone {
		return s.typeHint
	}

	return s.tag.TypeName()
}

// Resolve returns the value selected for requestKey.
func (s *Scalar) Resolve(r *override.Resolver, requestKey string) (any, string) {
	if v, key, ok := override.Resolve(r, s.overrides, requestKey, s.associated != ""); ok {
		return v, key
	}

	return s.defaultValue, ""
}

// KeyValue returns the string value this property supplies as a lookup key
// to the properties associated with it. ok is false for non-string values.
func (s *Scalar) KeyValue(r *override.Resolver, scheme string) (string, bool) {
	v := override.ValueFor(r, s.defaultValue, s.overrides, scheme, false)
	str, ok := v.(string)

	return str, ok
}

// Value implements Property.
func (s *Scalar) Value(ctx Context, requestKey string) (string, string, error) {
	v, matched := s.Resolve(ctx.Resolver, requestKey)

	out, err := Literal(s.tag, v, ctx.Secrets)
	if err != nil {
		return "", "", fmt.Errorf("property %q: %w", s.key, err)
	}

	return out, matched, nil
}

// Declaration implements Property.
func (s *Scalar) Declaration(ctx Context, requestKey string) (string, error) {
	value, _, err := s.Value(ctx, requestKey)
	if err != nil {
		return "", err
	}

	return declaration(ctx, s.common, s.TypeName(), value, s.tag.Computed()), nil
}
