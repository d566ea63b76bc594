package configfile

import (
	"config-generator/internal/override"
	"config-generator/internal/property"
)

// TemplateKey is the reserved key holding generation settings.
const TemplateKey = "template"

// EnumTemplateName selects the fixed case set generator.
const EnumTemplateName = "enum"

// Template is the typed view of a file's "template" object.
type Template struct {
	// Name selects a generator; "enum" produces a String backed enum.
	Name string `json:"name,omitempty" jsonschema:"enum=enum,description=Set to enum to generate a String backed enum"`

	// RawType is the raw value type of an enum template.
	RawType string `json:"rawType,omitempty" jsonschema:"enum=String,description=Raw value type of an enum template"`

	ExtensionOn   string `json:"extensionOn,omitempty" jsonschema:"description=Existing type to extend instead of declaring a namespace"`
	ExtensionName string `json:"extensionName,omitempty" jsonschema:"description=Suffix of the extension file name"`

	Imports     []string              `json:"imports,omitempty" jsonschema:"description=Modules imported in addition to Foundation"`
	CustomTypes []property.CustomType `json:"customTypes,omitempty"`
	Patterns    []override.Pattern    `json:"patterns,omitempty"`
	DefaultType string                `json:"defaultType,omitempty" jsonschema:"description=Type of properties that declare none"`

	ReferenceSource string `json:"referenceSource,omitempty" jsonschema:"description=Sibling .config file (without extension) searched by Reference properties"`
	RequiresNonObjC bool   `json:"requiresNonObjC,omitempty" jsonschema:"description=Render values as @nonobjc computed properties"`

	EntityType        string `json:"entityType,omitempty" jsonschema:"enum=enum,enum=struct,enum=class,description=Kind of the generated namespace"`
	InstanceVariables bool   `json:"instanceVariables,omitempty" jsonschema:"description=Declare root values as instance members"`

	// HasExtension is true when extensionOn is present, even if empty.
	HasExtension bool `json:"-"`
}

// TemplateFrom extracts the template of a configuration object. Fields of the
// wrong type are ignored, as are malformed custom type and pattern entries.
func TemplateFrom(object map[string]any) Template {
	raw, _ := object[TemplateKey].(map[string]any)

	var t Template

	t.Name, _ = raw["name"].(string)
	t.RawType, _ = raw["rawType"].(string)
	t.ExtensionOn, t.HasExtension = raw["extensionOn"].(string)
	t.ExtensionName, _ = raw["extensionName"].(string)
	t.DefaultType, _ = raw["defaultType"].(string)
	t.ReferenceSource, _ = raw["referenceSource"].(string)
	t.RequiresNonObjC, _ = raw["requiresNonObjC"].(bool)
	t.EntityType, _ = raw["entityType"].(string)
	t.InstanceVariables, _ = raw["instanceVariables"].(bool)

	for _, v := range list(raw["imports"]) {
		if s, ok := v.(string); ok {
			t.Imports = append(t.Imports, s)
		}
	}

	for _, v := range list(raw["customTypes"]) {
		entry, _ := v.(map[string]any)
		name, nok := entry["typeName"].(string)
		initialiser, iok := entry["initialiser"].(string)

		if nok && iok {
			t.CustomTypes = append(t.CustomTypes, property.CustomType{TypeName: name, Initialiser: initialiser})
		}
	}

	for _, v := range list(raw["patterns"]) {
		entry, _ := v.(map[string]any)
		alias, aok := entry["alias"].(string)
		pattern, pok := entry["pattern"].(string)

		if aok && pok {
			t.Patterns = append(t.Patterns, override.Pattern{Alias: alias, Pattern: pattern})
		}
	}

	return t
}

func list(v any) []any {
	l, _ := v.([]any)
	return l
}

// IsEnum reports whether the file uses the enum generator.
func (t Template) IsEnum() bool { return t.Name == EnumTemplateName }

// Filename is "{extensionOn}+{extensionName}" for extension files and empty
// otherwise.
func (t Template) Filename() string {
	if t.ExtensionOn == "" || t.ExtensionName == "" {
		return ""
	}

	return t.ExtensionOn + "+" + t.ExtensionName
}

// Entity returns the declaration keyword of the generated namespace.
func (t Template) Entity() string {
	switch {
	case t.HasExtension:
		return "extension"
	case t.EntityType != "":
		return t.EntityType
	default:
		return "enum"
	}
}
