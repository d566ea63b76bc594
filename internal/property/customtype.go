package property

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// positional is the name of the single unnamed placeholder.
const positional = "$0"

var (
	placeholderRe = regexp.MustCompile(`\{(.*?)\}`)

	// ErrCustomValue is returned when a value does not fit a custom type's placeholders.
	ErrCustomValue = errors.New("value does not fit the custom type initialiser")
)

// CustomType is a user declared Swift type with an initialiser template.
type CustomType struct {
	TypeName    string `json:"typeName" jsonschema:"description=Swift type name used in declarations"`
	Initialiser string `json:"initialiser" jsonschema:"description=Initialiser template with {name} or {name:Type} placeholders"`
}

// Placeholder is one {name} or {name:Type} slot of an initialiser.
type Placeholder struct {
	// Text is the placeholder as written, braces included.
	Text string
	Name string
	// Tag is the annotated type; TagNone when absent or unknown.
	Tag Tag
}

// Placeholders returns the slots of the initialiser in order of appearance.
func (c CustomType) Placeholders() []Placeholder {
	matches := placeholderRe.FindAllStringSubmatch(c.Initialiser, -1)
	out := make([]Placeholder, 0, len(matches))

	for _, m := range matches {
		p := Placeholder{Text: m[0], Name: m[1]}

		if name, typ, ok := strings.Cut(m[1], ":"); ok {
			p.Name = name
			p.Tag, _ = ParseTag(typ)
		}

		out = append(out, p)
	}

	return out
}

// Expand substitutes value into the initialiser.
//
// With no placeholders the initialiser is returned unchanged. A single {$0}
// placeholder takes value itself, quoted when it is a string. Otherwise value
// must be an object keyed by placeholder name; typed placeholders render
// through the built-in type rules and untyped ones as bare tokens.
func (c CustomType) Expand(value any) (string, error) {
	placeholders := c.Placeholders()

	switch {
	case len(placeholders) == 0:
		return c.Initialiser, nil
	case len(placeholders) == 1 && placeholders[0].Name == positional:
		out, err := placeholderValue(placeholders[0], value, true)
		if err != nil {
			return "", err
		}

		return substitute(c.Initialiser, map[string]string{placeholders[0].Text: out}), nil
	}

	fields, ok := value.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: %s expects an object, got %T", ErrCustomValue, c.TypeName, value)
	}

	values := make(map[string]string, len(placeholders))

	for _, p := range placeholders {
		raw, present := fields[p.Name]
		if !present {
			values[p.Text] = ""
			continue
		}

		v, err := placeholderValue(p, raw, false)
		if err != nil {
			return "", err
		}

		values[p.Text] = v
	}

	return substitute(c.Initialiser, values), nil
}

// substitute replaces every placeholder in one pass so substituted text is
// never scanned again.
func substitute(initialiser string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(initialiser, func(m string) string {
		return values[m]
	})
}

func placeholderValue(p Placeholder, raw any, quoteText bool) (string, error) {
	if p.Tag == TagNone {
		if s, ok := raw.(string); ok && quoteText {
			return quoted(s), nil
		}

		return bareToken(raw), nil
	}

	if p.Tag == TagEncrypted || p.Tag == TagReference {
		return "", fmt.Errorf("%w: placeholder %q cannot be of type %s", ErrCustomValue, p.Name, p.Tag)
	}

	v, err := Convert(p.Tag, raw)
	if err != nil {
		return "", fmt.Errorf("%w: placeholder %q: %w", ErrCustomValue, p.Name, err)
	}

	return Literal(p.Tag, v, Secrets{})
}
