package gen

import (
	"errors"
	"fmt"

	"config-generator/internal/configfile"
	"config-generator/internal/diagnostic"
	"config-generator/internal/property"
)

var (
	// ErrMalformedInput is returned for data that is not a JSON object.
	ErrMalformedInput = configfile.ErrMalformedInput
	// ErrUnresolvedTemplate is returned when no template handles a file.
	ErrUnresolvedTemplate = errors.New("no template can handle the configuration")
	// ErrMissingRequiredTypeField is returned by the enum template when the
	// file has no rawType.
	ErrMissingRequiredTypeField = errors.New("enum template requires a rawType")
	// ErrUnsupportedRawType is returned by the enum template for raw types
	// other than String.
	ErrUnsupportedRawType = errors.New("unsupported enum raw type")
	// ErrMissingEncryptionKey is returned when an Encrypted value is rendered
	// in a file without an EncryptionKey property.
	ErrMissingEncryptionKey = property.ErrMissingEncryptionKey
)

// Output is the generated text of one configuration file.
type Output struct {
	Text string
	// Filename overrides the output base name when not empty.
	Filename string
}

// Request is one configuration file to render.
type Request struct {
	Object map[string]any
	// Name is the file name without directory and extension.
	Name   string
	Scheme string
	// Loader resolves the file's referenceSource; nil disables lookups.
	Loader configfile.Loader
}

// Template renders one kind of configuration file.
type Template interface {
	Name() string
	CanHandle(object map[string]any) bool
	Render(req Request) (Output, diagnostic.Diagnostics, error)
}

// Registry is an ordered list of templates; the first that can handle a file
// renders it.
type Registry []Template

// DefaultRegistry holds the enum template and the namespace template.
var DefaultRegistry = Registry{EnumTemplate{}, NamespaceTemplate{}}

// Lookup returns the template for object.
func (r Registry) Lookup(object map[string]any) (Template, error) {
	for _, t := range r {
		if t.CanHandle(object) {
			return t, nil
		}
	}

	return nil, ErrUnresolvedTemplate
}

// Render renders req with the first template that can handle it.
func (r Registry) Render(req Request) (Output, diagnostic.Diagnostics, error) {
	t, err := r.Lookup(req.Object)
	if err != nil {
		return Output{}, diagnostic.Diagnostics{}, err
	}

	out, diags, err := t.Render(req)
	if err != nil {
		return Output{}, diags, fmt.Errorf("%s template: %w", t.Name(), err)
	}

	return out, diags, nil
}

// Render renders a configuration object for scheme with the default registry.
func Render(object map[string]any, name, scheme string, loader configfile.Loader) (Output, diagnostic.Diagnostics, error) {
	return DefaultRegistry.Render(Request{Object: object, Name: name, Scheme: scheme, Loader: loader})
}
