package tree

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"config-generator/internal/diagnostic"
	"config-generator/internal/override"
	"config-generator/internal/property"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var m map[string]any
	require.NoError(t, dec.Decode(&m))

	return m
}

func publicContext() property.Context {
	return property.Context{Resolver: override.NewResolver(nil), Public: true}
}

func TestBuild_Structure(t *testing.T) {
	cfg, diags := Build(decode(t, `{
		"template": {"imports": ["UIKit"]},
		"version": 3,
		"name": {"defaultValue": "app"},
		"colours": {
			"primary": {"type": "Colour", "defaultValue": "#FF0000"},
			"brand": {
				"logo": {"type": "Image", "defaultValue": "logo"}
			}
		}
	}`), Options{})

	require.Empty(t, diags.Warnings, spew.Sdump(diags))
	assert.Equal(t, []string{"name"}, sortedKeys(cfg.Properties))
	assert.Equal(t, []string{"colours"}, sortedKeys(cfg.Children))

	colours := cfg.Children["colours"]
	assert.Equal(t, []string{"primary"}, sortedKeys(colours.Properties))
	assert.Contains(t, colours.Children, "brand")
	assert.Contains(t, colours.Children["brand"].Properties, "logo")
}

func TestBuild_TypeDispatch(t *testing.T) {
	customTypes := []property.CustomType{
		{TypeName: "Spacing", Initialiser: "Spacing({$0})"},
		{TypeName: "Tab", Initialiser: "Tab(title: {title:String})"},
	}

	tests := []struct {
		name        string
		defaultType string
		raw         string
		typeName    string
		value       string
	}{
		{
			name:     "explicit tag",
			raw:      `{"type": "Int", "defaultValue": 4}`,
			typeName: "Int",
			value:    "4",
		},
		{
			name:     "no type is a string",
			raw:      `{"defaultValue": "plain"}`,
			typeName: "String",
			value:    `#"plain"#`,
		},
		{
			name:        "default type",
			defaultType: "Colour",
			raw:         `{"defaultValue": "#FF"}`,
			typeName:    "UIColor",
			value:       "UIColor(white: 255.0 / 255.0, alpha: 1.0)",
		},
		{
			name:        "explicit type beats default type",
			defaultType: "Colour",
			raw:         `{"type": "Bool", "defaultValue": false}`,
			typeName:    "Bool",
			value:       "false",
		},
		{
			name:     "custom type",
			raw:      `{"type": "Spacing", "defaultValue": 8}`,
			typeName: "Spacing",
			value:    "Spacing(8)",
		},
		{
			name:     "custom array",
			raw:      `{"type": "[Tab]", "defaultValue": [{"title": "Home"}]}`,
			typeName: "[Tab]",
			value:    `[Tab(title: #"Home"#)]`,
		},
		{
			name:     "unknown type is untyped",
			raw:      `{"type": "CGFloat", "defaultValue": "12.0"}`,
			typeName: "CGFloat",
			value:    "12.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, diags := Build(decode(t, `{"value": `+tt.raw+`}`), Options{
				CustomTypes: customTypes,
				DefaultType: tt.defaultType,
			})
			require.Empty(t, diags.Warnings, spew.Sdump(diags))

			p := cfg.Properties["value"]
			require.NotNil(t, p)
			assert.Equal(t, tt.typeName, p.TypeName())

			got, _, err := p.Value(publicContext(), "any")
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestBuild_DropsInvalidProperties(t *testing.T) {
	cfg, diags := Build(decode(t, `{
		"count": {"type": "Int", "defaultValue": "three"},
		"maybe": {"type": "Int?", "defaultValue": null},
		"theme": {"type": "DynamicColour", "defaultValue": {"light": "#FFFFFF"}},
		"size": {"type": "Size", "defaultValue": [1, 2]},
		"nested": {
			"flag": {"type": "Bool", "defaultValue": true, "overrides": {"dev": "yes"}}
		}
	}`), Options{
		CustomTypes: []property.CustomType{{TypeName: "Size", Initialiser: "Size({w}, {h})"}},
	})

	assert.Equal(t, []string{"maybe"}, sortedKeys(cfg.Properties))
	assert.Contains(t, cfg.Children["nested"].Properties, "flag")

	diags.Sort()

	require.Len(t, diags.Warnings, 4, spew.Sdump(diags))
	assert.Equal(t, []string{
		diagnostic.CodeUnconvertibleDefault,
		diagnostic.CodeInvalidOverride,
		diagnostic.CodeInvalidCustomValue,
		diagnostic.CodeInvalidDynamicColour,
	}, diags.Codes())
	assert.Equal(t, "nested.flag", diags.Warnings[1].Path)
}

func TestBuild_References(t *testing.T) {
	object := `{
		"primary": {"type": "Colour", "defaultValue": "#FF0000"},
		"secondary": {"type": "Colour", "defaultValue": "#00"},
		"accent": {"type": "Reference", "defaultValue": "primary", "overrides": {"dark": "secondary"}},
		"highlight": {"type": "Reference", "defaultValue": "accent"},
		"brandTint": {"type": "Reference", "defaultValue": "brand"},
		"spacing": {"type": "Reference", "defaultValue": "gap"}
	}`
	source := decode(t, `{
		"brand": {"type": "Colour", "defaultValue": "#0000FF"},
		"gap": {"type": "Reference", "defaultValue": "unit"},
		"unit": {"type": "Double", "defaultValue": 4}
	}`)

	cfg, diags := Build(decode(t, object), Options{ReferenceSource: source})
	require.Empty(t, diags.Warnings, spew.Sdump(diags))

	tests := []struct {
		key      string
		typeName string
		scheme   string
		value    string
	}{
		{key: "accent", typeName: "UIColor", scheme: "any", value: "primary"},
		{key: "accent", typeName: "UIColor", scheme: "dark", value: "secondary"},
		{key: "highlight", typeName: "UIColor", scheme: "any", value: "accent"},
		{key: "brandTint", typeName: "UIColor", scheme: "any", value: "brand"},
		{key: "spacing", typeName: "Double", scheme: "any", value: "gap"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.scheme, func(t *testing.T) {
			p := cfg.Properties[tt.key]
			require.NotNil(t, p)
			assert.Equal(t, tt.typeName, p.TypeName())

			got, _, err := p.Value(publicContext(), tt.scheme)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}

	// the reference and its pointee declare the same type
	assert.Equal(t, cfg.Properties["primary"].TypeName(), cfg.Properties["highlight"].TypeName())
}

func TestBuild_UnresolvedReferences(t *testing.T) {
	cfg, diags := Build(decode(t, `{
		"primaryColour": {"type": "Colour", "defaultValue": "#FF0000"},
		"a": {"type": "Reference", "defaultValue": "b"},
		"b": {"type": "Reference", "defaultValue": "a"},
		"typo": {"type": "Reference", "defaultValue": "primaryColor"},
		"namespace": {"type": "Reference", "defaultValue": "group"},
		"group": {"inner": {"defaultValue": "x"}}
	}`), Options{})

	assert.Equal(t, []string{"primaryColour"}, sortedKeys(cfg.Properties))

	diags.Sort()
	require.Len(t, diags.Warnings, 4, spew.Sdump(diags))

	for _, w := range diags.Warnings {
		assert.Equal(t, diagnostic.CodeUnresolvedReference, w.Code)
	}

	assert.Contains(t, diags.Warnings[0].Message, "circular")
	assert.Equal(t, "typo", diags.Warnings[3].Path)
	assert.Equal(t, []string{"primaryColour"}, diags.Warnings[3].Suggestions)
}

func TestConfiguration_Render(t *testing.T) {
	cfg, diags := Build(decode(t, `{
		"b": {"defaultValue": "x"},
		"a": {"type": "Int", "defaultValue": 1, "description": "First"},
		"colours": {
			"primary": {"type": "Colour", "defaultValue": "#FF0000"},
			"dark": {
				"text": {"defaultValue": "white"}
			}
		},
		"alpha": {
			"z": {"type": "Bool", "defaultValue": true}
		}
	}`), Options{})
	require.Empty(t, diags.Warnings)

	got, err := cfg.Render(publicContext(), "any")
	require.NoError(t, err)

	expected := strings.Join([]string{
		`    /// First`,
		`    public static let a: Int = 1`,
		``,
		`    public static let b: String = #"x"#`,
		``,
		`    public enum Alpha {`,
		`        public static let z: Bool = true`,
		`    }`,
		``,
		`    public enum Colours {`,
		`        public static let primary: UIColor = UIColor(red: 255.0 / 255.0, green: 0.0 / 255.0, blue: 0.0 / 255.0, alpha: 1.0)`,
		``,
		`        public enum Dark {`,
		`            public static let text: String = #"white"#`,
		`        }`,
		`    }`,
	}, "\n")
	assert.Equal(t, expected, got)
}

func TestConfiguration_RenderInstanceAndPrivate(t *testing.T) {
	cfg, _ := Build(decode(t, `{
		"a": {"defaultValue": "x"},
		"child": {"b": {"defaultValue": "y"}}
	}`), Options{})

	ctx := property.Context{Resolver: override.NewResolver(nil), Instance: true}

	got, err := cfg.Render(ctx, "any")
	require.NoError(t, err)
	assert.Equal(t, "    let a: String = #\"x\"#\n\n    enum Child {\n        static let b: String = #\"y\"#\n    }", got)
}

func TestConfiguration_RenderOnlyChildren(t *testing.T) {
	cfg, _ := Build(decode(t, `{"child": {"b": {"defaultValue": "y"}}}`), Options{})

	got, err := cfg.Render(publicContext(), "any")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "    public enum Child {"), got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestConfiguration_AssociatedProperty(t *testing.T) {
	cfg, diags := Build(decode(t, `{
		"region": {"defaultValue": "eu", "overrides": {"^us": "us"}},
		"host": {
			"associatedProperty": "region",
			"defaultValue": "default.example",
			"overrides": {"eu": "eu.example", "us": "us.example"}
		}
	}`), Options{})
	require.Empty(t, diags.Warnings)

	ctx := publicContext()
	host := cfg.Properties["host"]

	assert.Equal(t, "us", cfg.RequestKey(host, ctx.Resolver, "us-prod"))

	got, _, err := host.Value(ctx, cfg.RequestKey(host, ctx.Resolver, "us-prod"))
	require.NoError(t, err)
	assert.Equal(t, `#"us.example"#`, got)

	got, _, err = host.Value(ctx, cfg.RequestKey(host, ctx.Resolver, "dev"))
	require.NoError(t, err)
	assert.Equal(t, `#"eu.example"#`, got)

	assert.Equal(t, "dev", cfg.RequestKey(cfg.Properties["region"], ctx.Resolver, "dev"))
}

func TestConfiguration_EncryptionKey(t *testing.T) {
	r := override.NewResolver(nil)

	cfg, _ := Build(decode(t, `{
		"zeta": {"secrets": {"key": {"type": "EncryptionKey", "defaultValue": "nested"}}},
		"alpha": {"other": {"type": "EncryptionKey", "defaultValue": "first", "overrides": {"prod": "production"}}}
	}`), Options{})

	key, ok := cfg.EncryptionKey(r, "dev")
	require.True(t, ok)
	assert.Equal(t, "first", key)

	key, ok = cfg.EncryptionKey(r, "prod")
	require.True(t, ok)
	assert.Equal(t, "production", key)

	empty, _ := Build(decode(t, `{"a": {"defaultValue": "x"}}`), Options{})
	_, ok = empty.EncryptionKey(r, "dev")
	assert.False(t, ok)
}

func TestConfiguration_Walk(t *testing.T) {
	cfg, _ := Build(decode(t, `{
		"b": {"defaultValue": "x"},
		"a": {"defaultValue": "y"},
		"ns": {"c": {"defaultValue": "z"}, "inner": {"d": {"defaultValue": "w"}}}
	}`), Options{})

	var paths []string
	require.NoError(t, cfg.Walk(func(path string, _ *Configuration, _ property.Property) error {
		paths = append(paths, path)
		return nil
	}))

	assert.Equal(t, []string{"a", "b", "ns.c", "ns.inner.d"}, paths)
}

func TestConfiguration_RenderIsOrderIndependent(t *testing.T) {
	const object = `{
		"one": {"defaultValue": "1", "overrides": {"dev": "d", "de": "x"}},
		"two": {"type": "Dictionary", "defaultValue": {"b": 1, "a": {"y": true, "x": false}}},
		"ns": {"three": {"type": "[String]", "defaultValue": ["c", "a"]}}
	}`

	first, _ := Build(decode(t, object), Options{})
	want, err := first.Render(publicContext(), "dev")
	require.NoError(t, err)

	for range 20 {
		cfg, _ := Build(decode(t, object), Options{})

		got, err := cfg.Render(publicContext(), "dev")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Contains(t, want, `["a": ["x": false, "y": true], "b": 1]`)
	assert.Contains(t, want, `public static let one: String = #"d"#`)
}
