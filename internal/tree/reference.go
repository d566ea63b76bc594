package tree

import (
	"errors"
	"fmt"
	"strings"

	"config-generator/internal/match"
	"config-generator/internal/property"
)

const maxSuggestions = 3

var (
	// ErrUnknownReference is returned when a reference names no property.
	ErrUnknownReference = errors.New("referenced property does not exist")
	// ErrReferenceCycle is returned when a reference chain loops back on itself.
	ErrReferenceCycle = errors.New("reference chain is circular")
)

// UnresolvedError describes a reference chain that ends nowhere.
type UnresolvedError struct {
	// Chain lists the keys visited, the failing reference first.
	Chain []string
	// Target is the key that could not be resolved.
	Target      string
	Suggestions []string
	Err         error
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%s: %q (via %s)", e.Err, e.Target, strings.Join(e.Chain, " -> "))
}

func (e *UnresolvedError) Unwrap() error { return e.Err }

// referenceType follows the chain starting at raw until it reaches a property
// that is not itself a Reference and returns that property's type name.
// Pointees are looked up in scope first, then in the reference source.
func (b *builder) referenceType(key string, raw, scope map[string]any) (string, error) {
	chain := []string{key}
	seen := map[string]bool{key: true}

	for {
		target, ok := raw[property.FieldDefaultValue].(string)
		if !ok {
			return "", fmt.Errorf("property %q default: %w: Reference from %T",
				key, property.ErrUnconvertible, raw[property.FieldDefaultValue])
		}

		if seen[target] {
			return "", &UnresolvedError{Chain: chain, Target: target, Err: ErrReferenceCycle}
		}

		pointee := b.lookup(target, scope)
		if pointee == nil {
			return "", &UnresolvedError{
				Chain:       chain,
				Target:      target,
				Suggestions: match.Suggest(target, b.candidates(scope), maxSuggestions),
				Err:         ErrUnknownReference,
			}
		}

		hint := b.hint(pointee)

		tag, isTag := property.ParseTag(hint)
		if isTag && tag == property.TagReference {
			chain = append(chain, target)
			seen[target] = true
			raw = pointee

			continue
		}

		return b.typeName(hint, tag, isTag), nil
	}
}

func (b *builder) typeName(hint string, tag property.Tag, isTag bool) string {
	if isTag {
		return tag.TypeName()
	}

	if ct, array, ok := b.customType(hint); ok {
		if array {
			return "[" + ct.TypeName + "]"
		}

		return ct.TypeName
	}

	return hint
}

// lookup returns the property object named key. Namespaces are not
// properties and are skipped.
func (b *builder) lookup(key string, scope map[string]any) map[string]any {
	for _, m := range []map[string]any{scope, b.opts.ReferenceSource} {
		if raw, ok := m[key].(map[string]any); ok && isLeaf(raw) {
			return raw
		}
	}

	return nil
}

func isLeaf(raw map[string]any) bool {
	_, ok := raw[property.FieldDefaultValue]
	return ok
}

// candidates lists the property keys a reference could point at.
func (b *builder) candidates(scope map[string]any) []string {
	var out []string

	for _, m := range []map[string]any{scope, b.opts.ReferenceSource} {
		for _, k := range sortedKeys(m) {
			if raw, ok := m[k].(map[string]any); ok && isLeaf(raw) {
				out = append(out, k)
			}
		}
	}

	return out
}
