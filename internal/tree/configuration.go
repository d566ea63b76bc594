package tree

import (
	"errors"
	"sort"
	"strings"

	"config-generator/internal/override"
	"config-generator/internal/property"
)

const separator = "\n\n"

var errStop = errors.New("stop walking")

// Configuration is one namespace of the generated output.
type Configuration struct {
	Properties map[string]property.Property
	Children   map[string]*Configuration
}

// RequestKey returns the override lookup key for p. Properties with an
// associated property use the value that sibling resolves to for scheme;
// everything else uses the scheme itself.
func (c *Configuration) RequestKey(p property.Property, r *override.Resolver, scheme string) string {
	assoc := p.AssociatedProperty()
	if assoc == "" {
		return scheme
	}

	provider, ok := c.Properties[assoc].(*property.Scalar)
	if !ok {
		return scheme
	}

	if key, ok := provider.KeyValue(r, scheme); ok {
		return key
	}

	return scheme
}

// Render writes the body of the namespace at ctx.Indent: the property
// declarations sorted by text, then the nested namespaces sorted by text.
func (c *Configuration) Render(ctx property.Context, scheme string) (string, error) {
	props := make([]string, 0, len(c.Properties))

	for _, p := range c.Properties {
		decl, err := p.Declaration(ctx, c.RequestKey(p, ctx.Resolver, scheme))
		if err != nil {
			return "", err
		}

		props = append(props, decl)
	}

	children := make([]string, 0, len(c.Children))

	for name, child := range c.Children {
		body, err := child.Render(ctx.Nested(), scheme)
		if err != nil {
			return "", err
		}

		pad := property.Indent(ctx.Indent)

		visibility := ""
		if ctx.Public {
			visibility = "public "
		}

		children = append(children,
			pad+visibility+"enum "+property.Capitalise(name)+" {\n"+body+"\n"+pad+"}")
	}

	sort.Strings(props)
	sort.Strings(children)

	out := strings.Join(props, separator) + separator + strings.Join(children, separator)

	return strings.Trim(out, "\n"), nil
}

// WalkFunc is called for every property of a tree. path is the dotted
// namespace path of the property, key included.
type WalkFunc func(path string, node *Configuration, p property.Property) error

// Walk visits the properties of c in a fixed order: the node's own
// properties by key, then each child by key, depth first.
func (c *Configuration) Walk(fn WalkFunc) error {
	return c.walk("", fn)
}

func (c *Configuration) walk(prefix string, fn WalkFunc) error {
	for _, key := range sortedKeys(c.Properties) {
		if err := fn(joinPath(prefix, key), c, c.Properties[key]); err != nil {
			return err
		}
	}

	for _, key := range sortedKeys(c.Children) {
		if err := c.Children[key].walk(joinPath(prefix, key), fn); err != nil {
			return err
		}
	}

	return nil
}

// EncryptionKey returns the value of the first EncryptionKey property found
// by Walk, resolved for scheme. ok is false when the tree declares none.
func (c *Configuration) EncryptionKey(r *override.Resolver, scheme string) (key string, ok bool) {
	_ = c.Walk(func(_ string, node *Configuration, p property.Property) error {
		s, isScalar := p.(*property.Scalar)
		if !isScalar || s.Tag() != property.TagEncryptionKey {
			return nil
		}

		v, _ := s.Resolve(r, node.RequestKey(s, r, scheme))
		key, ok = v.(string)

		return errStop
	})

	return key, ok
}
