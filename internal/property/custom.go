package property

import (
	"fmt"
	"sort"
	"strings"

	"config-generator/internal/override"
)

// Custom is a property whose value is built from a CustomType initialiser.
type Custom struct {
	common

	customType   CustomType
	defaultValue any
	overrides    map[string]any
}

// NewCustom builds a custom property. The default and every override must
// expand against the type's initialiser.
func NewCustom(key string, ct CustomType, raw map[string]any) (*Custom, error) {
	c := &Custom{
		common:       commonFrom(key, raw),
		customType:   ct,
		defaultValue: raw[FieldDefaultValue],
		overrides:    map[string]any{},
	}

	if rawOverrides, ok := raw[FieldOverrides].(map[string]any); ok {
		c.overrides = rawOverrides
	}

	for _, v := range c.candidates() {
		if _, err := ct.Expand(v); err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
	}

	return c, nil
}

func (c *Custom) candidates() []any {
	out := []any{c.defaultValue}
	for _, k := range sortedKeys(c.overrides) {
		out = append(out, c.overrides[k])
	}

	return out
}

// TypeName implements Property.
func (c *Custom) TypeName() string { return c.customType.TypeName }

// Value implements Property.
func (c *Custom) Value(ctx Context, requestKey string) (string, string, error) {
	v, matched, ok := override.Resolve(ctx.Resolver, c.overrides, requestKey, c.associated != "")
	if !ok {
		v = c.defaultValue
	}

	out, err := c.customType.Expand(v)
	if err != nil {
		return "", "", fmt.Errorf("property %q: %w", c.key, err)
	}

	return out, matched, nil
}

// Declaration implements Property.
func (c *Custom) Declaration(ctx Context, requestKey string) (string, error) {
	value, _, err := c.Value(ctx, requestKey)
	if err != nil {
		return "", err
	}

	return declaration(ctx, c.common, c.TypeName(), value, false), nil
}

// CustomArray is a property holding a list of CustomType values.
type CustomArray struct {
	common

	customType   CustomType
	defaultValue []any
	overrides    map[string][]any
}

// NewCustomArray builds a custom array property. The default must be a list;
// overrides that are not lists are rejected.
func NewCustomArray(key string, ct CustomType, raw map[string]any) (*CustomArray, error) {
	def, ok := raw[FieldDefaultValue].([]any)
	if !ok {
		return nil, fmt.Errorf("property %q default: %w: [%s] from %T",
			key, ErrUnconvertible, ct.TypeName, raw[FieldDefaultValue])
	}

	c := &CustomArray{
		common:       commonFrom(key, raw),
		customType:   ct,
		defaultValue: def,
		overrides:    map[string][]any{},
	}

	rawOverrides, _ := raw[FieldOverrides].(map[string]any)
	for _, k := range sortedKeys(rawOverrides) {
		list, ok := rawOverrides[k].([]any)
		if !ok {
			return nil, fmt.Errorf("property %q override %q: %w: [%s] from %T",
				key, k, ErrUnconvertible, ct.TypeName, rawOverrides[k])
		}

		c.overrides[k] = list
	}

	if _, err := c.expand(def); err != nil {
		return nil, fmt.Errorf("property %q: %w", key, err)
	}

	for _, k := range sortedKeys(c.overrides) {
		if _, err := c.expand(c.overrides[k]); err != nil {
			return nil, fmt.Errorf("property %q override %q: %w", key, k, err)
		}
	}

	return c, nil
}

// TypeName implements Property.
func (c *CustomArray) TypeName() string { return "[" + c.customType.TypeName + "]" }

// Value implements Property.
func (c *CustomArray) Value(ctx Context, requestKey string) (string, string, error) {
	v, matched, ok := override.Resolve(ctx.Resolver, c.overrides, requestKey, c.associated != "")
	if !ok {
		v = c.defaultValue
	}

	out, err := c.expand(v)
	if err != nil {
		return "", "", fmt.Errorf("property %q: %w", c.key, err)
	}

	return out, matched, nil
}

func (c *CustomArray) expand(values []any) (string, error) {
	parts := make([]string, len(values))

	for i, v := range values {
		out, err := c.customType.Expand(v)
		if err != nil {
			return "", err
		}

		parts[i] = out
	}

	return "[" + strings.Join(parts, ", ") + "]", nil
}

// Declaration implements Property.
func (c *CustomArray) Declaration(ctx Context, requestKey string) (string, error) {
	value, _, err := c.Value(ctx, requestKey)
	if err != nil {
		return "", err
	}

	return declaration(ctx, c.common, c.TypeName(), value, false), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
