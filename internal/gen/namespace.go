package gen

import (
	"bytes"
	"fmt"
	"slices"
	"text/template"

	"config-generator/internal/configfile"
	"config-generator/internal/crypt"
	"config-generator/internal/diagnostic"
	"config-generator/internal/override"
	"config-generator/internal/property"
	"config-generator/internal/tree"
)

// CodeMissingReferenceSource is reported when a referenceSource cannot be loaded.
const CodeMissingReferenceSource = "missing_reference_source"

// SchemeNameKey is the property injected with the scheme name.
const SchemeNameKey = "schemeName"

// NamespaceTemplate renders a file as a namespace of constants, or as an
// extension of an existing type. It handles every file.
type NamespaceTemplate struct{}

// Name implements Template.
func (NamespaceTemplate) Name() string { return "namespace" }

// CanHandle implements Template.
func (NamespaceTemplate) CanHandle(map[string]any) bool { return true }

// file is a configuration file ready to render for one scheme.
type file struct {
	template configfile.Template
	root     *tree.Configuration
	ctx      property.Context
}

// prepare builds the tree of req and the render context shared by every
// declaration: the IV and encryption key, visibility and the pattern table.
func prepare(req Request) (*file, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	tmpl := configfile.TemplateFrom(req.Object)
	resolver := override.NewResolver(tmpl.Patterns)

	var source map[string]any

	if tmpl.ReferenceSource != "" && req.Loader != nil {
		loaded, err := req.Loader.Load(tmpl.ReferenceSource)
		if err != nil {
			diags.AddWarning(CodeMissingReferenceSource, err.Error(), "", "")
		}

		source = loaded
	}

	root, built := tree.Build(req.Object, tree.Options{
		ReferenceSource: source,
		CustomTypes:     tmpl.CustomTypes,
		DefaultType:     tmpl.DefaultType,
	})
	diags.Merge(built)

	iv, err := crypt.Hash(req.Object)
	if err != nil {
		return nil, diags, fmt.Errorf("hashing configuration: %w", err)
	}

	key, hasKey := root.EncryptionKey(resolver, req.Scheme)
	if hasKey {
		root.Properties[property.IVKey] = property.NewIV(iv)
	}

	if !tmpl.HasExtension {
		root.Properties[SchemeNameKey] = property.NewSchemeName(req.Scheme)
	}

	return &file{
		template: tmpl,
		root:     root,
		ctx: property.Context{
			Resolver: resolver,
			Secrets:  property.Secrets{IV: iv, Key: key, HasKey: hasKey},
			Public:   !tmpl.HasExtension,
			Instance: tmpl.InstanceVariables,
			NonObjC:  tmpl.RequiresNonObjC,
		},
	}, diags, nil
}

const swiftlintRules = "force_unwrapping type_body_length file_length superfluous_disable_command"

var namespaceTemplate = template.Must(template.New("namespace").Parse(`/* {{.Filename}}.swift auto-generated from {{.Scheme}} */

{{range .Imports}}import {{.}}
{{end}}
// swiftlint:disable {{.Rules}}
public {{.Entity}} {{.Name}} {
{{.Contents}}
}

// swiftlint:enable {{.Rules}}
`))

type namespaceData struct {
	Filename string
	Scheme   string
	Imports  []string
	Rules    string
	Entity   string
	Name     string
	Contents string
}

// Render implements Template.
func (NamespaceTemplate) Render(req Request) (Output, diagnostic.Diagnostics, error) {
	f, diags, err := prepare(req)
	if err != nil {
		return Output{}, diags, err
	}

	contents, err := f.root.Render(f.ctx, req.Scheme)
	if err != nil {
		return Output{}, diags, err
	}

	imports := append([]string{"Foundation"}, f.template.Imports...)
	slices.Sort(imports)
	imports = slices.Compact(imports)

	filename := f.template.Filename()

	data := namespaceData{
		Filename: req.Name,
		Scheme:   req.Scheme,
		Imports:  imports,
		Rules:    swiftlintRules,
		Entity:   f.template.Entity(),
		Name:     req.Name,
		Contents: contents,
	}

	if filename != "" {
		data.Filename = filename
	}

	if f.template.HasExtension {
		data.Name = f.template.ExtensionOn
	}

	var buf bytes.Buffer
	if err := namespaceTemplate.Execute(&buf, data); err != nil {
		return Output{}, diags, fmt.Errorf("executing template: %w", err)
	}

	return Output{Text: buf.String(), Filename: filename}, diags, nil
}
