package tree

import (
	"errors"
	"fmt"
	"sort"

	"config-generator/internal/diagnostic"
	"config-generator/internal/property"
)

// TemplateKey is the reserved key holding generation settings.
const TemplateKey = "template"

// Options configure how a configuration object is turned into a tree.
type Options struct {
	// ReferenceSource is consulted when a Reference points at a key the
	// current object does not have.
	ReferenceSource map[string]any
	// CustomTypes are matched by type name, or as "[Name]" for arrays.
	CustomTypes []property.CustomType
	// DefaultType is the type hint used by properties without a "type".
	DefaultType string
}

type builder struct {
	opts  Options
	diags diagnostic.Diagnostics
}

// Build constructs the tree for object. It never fails: properties that
// cannot be built are omitted and reported in the returned diagnostics.
func Build(object map[string]any, opts Options) (*Configuration, diagnostic.Diagnostics) {
	b := &builder{opts: opts}
	root := b.node(object, "")

	return root, b.diags
}

func (b *builder) node(object map[string]any, prefix string) *Configuration {
	c := &Configuration{
		Properties: map[string]property.Property{},
		Children:   map[string]*Configuration{},
	}

	for _, key := range sortedKeys(object) {
		raw, ok := object[key].(map[string]any)
		if !ok {
			continue
		}

		path := joinPath(prefix, key)

		if !isLeaf(raw) {
			if key != TemplateKey {
				c.Children[key] = b.node(raw, path)
			}

			continue
		}

		if p := b.property(key, path, raw, object); p != nil {
			c.Properties[key] = p
		}
	}

	return c
}

// hint returns the declared type of a property object.
func (b *builder) hint(raw map[string]any) string {
	if t, ok := raw[property.FieldType].(string); ok && t != "" {
		return t
	}

	if b.opts.DefaultType != "" {
		return b.opts.DefaultType
	}

	return property.TagString.Raw()
}

// customType finds the custom type named hint; array reports a "[Name]" match.
func (b *builder) customType(hint string) (ct property.CustomType, array, ok bool) {
	for _, ct := range b.opts.CustomTypes {
		if ct.TypeName == hint {
			return ct, false, true
		}
	}

	for _, ct := range b.opts.CustomTypes {
		if "["+ct.TypeName+"]" == hint {
			return ct, true, true
		}
	}

	return property.CustomType{}, false, false
}

func (b *builder) property(key, path string, raw, scope map[string]any) property.Property {
	hint := b.hint(raw)

	if tag, ok := property.ParseTag(hint); ok {
		if tag == property.TagReference {
			return b.reference(key, path, raw, scope)
		}

		return b.scalar(key, path, tag, hint, raw)
	}

	if ct, array, ok := b.customType(hint); ok {
		var (
			p   property.Property
			err error
		)

		if array {
			p, err = property.NewCustomArray(key, ct, raw)
		} else {
			p, err = property.NewCustom(key, ct, raw)
		}

		if err != nil {
			b.diags.AddWarning(diagnostic.CodeInvalidCustomValue, err.Error(), "", path)
			return nil
		}

		return p
	}

	return b.scalar(key, path, property.TagNone, hint, raw)
}

func (b *builder) scalar(key, path string, tag property.Tag, hint string, raw map[string]any) property.Property {
	s, err := property.NewScalar(key, tag, hint, raw)
	if err != nil {
		code := diagnostic.CodeUnconvertibleDefault
		if tag == property.TagDynamicColour || tag == property.TagDynamicColourReference {
			code = diagnostic.CodeInvalidDynamicColour
		}

		b.diags.AddWarning(code, err.Error(), "", path)

		return nil
	}

	for _, k := range s.InvalidOverrides() {
		b.diags.AddWarning(diagnostic.CodeInvalidOverride,
			fmt.Sprintf("override %q is not a valid %s and was ignored", k, tag), "", path)
	}

	return s
}

func (b *builder) reference(key, path string, raw, scope map[string]any) property.Property {
	typeName, err := b.referenceType(key, raw, scope)
	if err != nil {
		var unresolved *UnresolvedError

		switch {
		case errors.As(err, &unresolved):
			b.diags.AddWarning(diagnostic.CodeUnresolvedReference, err.Error(), "", path, unresolved.Suggestions...)
		default:
			b.diags.AddWarning(diagnostic.CodeUnconvertibleDefault, err.Error(), "", path)
		}

		return nil
	}

	r, err := property.NewReference(key, typeName, raw)
	if err != nil {
		b.diags.AddWarning(diagnostic.CodeUnconvertibleDefault, err.Error(), "", path)
		return nil
	}

	return r
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
