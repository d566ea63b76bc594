package property

import (
	"strings"

	"config-generator/internal/override"
)

// Context holds everything a property needs to render for one scheme.
type Context struct {
	// Resolver matches override keys; it carries the file's pattern aliases.
	Resolver *override.Resolver
	// Secrets feed Encrypted values.
	Secrets Secrets
	// Public prefixes declarations with "public".
	Public bool
	// Instance drops "static" so declarations become instance members.
	Instance bool
	// NonObjC renders stored values as @nonobjc computed properties.
	NonObjC bool
	// Indent is the nesting depth of the enclosing namespace.
	Indent int
}

// Nested returns a copy of the context one level deeper. Nested namespaces
// always hold static members.
func (c Context) Nested() Context {
	c.Indent++
	c.Instance = false

	return c
}

// Property is a single declaration in a generated namespace.
type Property interface {
	// Key is the declared identifier, unique within its namespace.
	Key() string
	// TypeName is the Swift type written in the declaration.
	TypeName() string
	// AssociatedProperty names a sibling whose value replaces the scheme as
	// the override lookup key. Empty when unset.
	AssociatedProperty() string
	// Value renders the value expression for requestKey and reports which
	// override key supplied it (empty for the default).
	Value(ctx Context, requestKey string) (value string, matched string, err error)
	// Declaration renders the full declaration text for requestKey.
	Declaration(ctx Context, requestKey string) (string, error)
}

// common carries the fields shared by every property variant.
type common struct {
	key         string
	description string
	associated  string
}

func (c common) Key() string                { return c.key }
func (c common) Description() string        { return c.description }
func (c common) AssociatedProperty() string { return c.associated }

// declaration assembles the declaration text of a property.
//
// Stored:   [public ][static ]let key: Type = value
// NonObjC:  @nonobjc[ public][ static] var key: Type { return value }
// Computed: [@nonobjc ][public ][static ]var key: Type { <value block> }
func declaration(ctx Context, c common, typeName, value string, computed bool) string {
	var b strings.Builder

	pad := Indent(ctx.Indent)

	if c.description != "" {
		b.WriteString(pad + "/// " + c.description + "\n")
	}

	var modifiers []string
	if ctx.NonObjC {
		modifiers = append(modifiers, "@nonobjc")
	}

	if ctx.Public {
		modifiers = append(modifiers, "public")
	}

	if !ctx.Instance {
		modifiers = append(modifiers, "static")
	}

	switch {
	case computed:
		b.WriteString(pad + strings.Join(append(modifiers, "var"), " ") + " " + c.key + ": " + typeName + " {\n")
		b.WriteString(reindent(value, ctx.Indent+1) + "\n")
		b.WriteString(pad + "}")
	case ctx.NonObjC:
		b.WriteString(pad + strings.Join(append(modifiers, "var"), " ") + " " + c.key + ": " + typeName + " {\n")
		b.WriteString(Indent(ctx.Indent+1) + "return " + value + "\n")
		b.WriteString(pad + "}")
	default:
		b.WriteString(pad + strings.Join(append(modifiers, "let"), " ") + " " + c.key + ": " + typeName + " = " + value)
	}

	return b.String()
}
