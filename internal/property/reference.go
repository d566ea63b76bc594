package property

import (
	"fmt"

	"config-generator/internal/override"
)

// Reference is a property whose value is another declaration in the same
// scope, written as a bare identifier.
type Reference struct {
	common

	typeName     string
	defaultValue string
	overrides    map[string]string
}

// NewReference builds a reference property. typeName is the type of the
// concrete property at the end of the reference chain.
func NewReference(key, typeName string, raw map[string]any) (*Reference, error) {
	def, ok := raw[FieldDefaultValue].(string)
	if !ok {
		return nil, fmt.Errorf("property %q default: %w: Reference from %T",
			key, ErrUnconvertible, raw[FieldDefaultValue])
	}

	r := &Reference{
		common:       commonFrom(key, raw),
		typeName:     typeName,
		defaultValue: def,
		overrides:    map[string]string{},
	}

	rawOverrides, _ := raw[FieldOverrides].(map[string]any)
	for k, v := range rawOverrides {
		if s, ok := v.(string); ok {
			r.overrides[k] = s
		}
	}

	return r, nil
}

// TypeName implements Property.
func (r *Reference) TypeName() string { return r.typeName }

// Value implements Property.
func (r *Reference) Value(ctx Context, requestKey string) (string, string, error) {
	if v, matched, ok := override.Resolve(ctx.Resolver, r.overrides, requestKey, r.associated != ""); ok {
		return v, matched, nil
	}

	return r.defaultValue, "", nil
}

// Declaration implements Property.
func (r *Reference) Declaration(ctx Context, requestKey string) (string, error) {
	value, _, err := r.Value(ctx, requestKey)
	if err != nil {
		return "", err
	}

	return declaration(ctx, r.common, r.typeName, value, false), nil
}
