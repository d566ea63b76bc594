package gen

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"

	"config-generator/internal/configfile"
	"config-generator/internal/diagnostic"
	"config-generator/internal/override"
	"config-generator/internal/property"
)

// EnumTemplate renders a file as a String backed enum: every top level
// property becomes a case whose raw value is the property value for the
// scheme. It handles files whose template is named "enum".
type EnumTemplate struct{}

var enumTemplate = template.Must(template.New("enum").Parse(`/* {{.Name}} auto-generated from {{.Scheme}} */
import Foundation

public enum {{.Name}}: {{.RawType}} {
{{.Cases}}
}
`))

// Name implements Template.
func (EnumTemplate) Name() string { return configfile.EnumTemplateName }

// CanHandle implements Template.
func (EnumTemplate) CanHandle(object map[string]any) bool {
	return configfile.TemplateFrom(object).IsEnum()
}

// Render implements Template.
func (EnumTemplate) Render(req Request) (Output, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	tmpl := configfile.TemplateFrom(req.Object)

	switch tmpl.RawType {
	case "":
		return Output{}, diags, ErrMissingRequiredTypeField
	case property.TagString.Raw():
	default:
		return Output{}, diags, fmt.Errorf("%w: %q", ErrUnsupportedRawType, tmpl.RawType)
	}

	resolver := override.NewResolver(tmpl.Patterns)

	var cases []string

	for _, key := range slices.Sorted(maps.Keys(req.Object)) {
		raw, ok := req.Object[key].(map[string]any)
		if !ok {
			continue
		}

		if _, ok := raw[property.FieldDefaultValue]; !ok {
			continue
		}

		s, err := property.NewScalar(key, property.TagString, "", raw)
		if err != nil {
			diags.AddWarning(diagnostic.CodeUnconvertibleDefault, err.Error(), "", key)
			continue
		}

		value, _ := s.Resolve(resolver, req.Scheme)

		c := "    case " + key
		if str, _ := value.(string); str != "" {
			literal, _ := property.Literal(property.TagString, str, property.Secrets{})
			c += " = " + literal
		}

		cases = append(cases, c)
	}

	slices.Sort(cases)

	var buf bytes.Buffer

	err := enumTemplate.Execute(&buf, map[string]string{
		"Name":    req.Name,
		"Scheme":  req.Scheme,
		"RawType": tmpl.RawType,
		"Cases":   strings.Join(cases, "\n"),
	})
	if err != nil {
		return Output{}, diags, fmt.Errorf("executing template: %w", err)
	}

	return Output{Text: buf.String()}, diags, nil
}
