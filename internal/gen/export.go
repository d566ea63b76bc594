package gen

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"config-generator/internal/diagnostic"
	"config-generator/internal/property"
	"config-generator/internal/tree"
)

// ResolvedFile lists the value every property takes for one scheme.
type ResolvedFile struct {
	Name       string             `yaml:"name"`
	Scheme     string             `yaml:"scheme"`
	Properties []ResolvedProperty `yaml:"properties"`
}

// ResolvedProperty is one property of a ResolvedFile.
type ResolvedProperty struct {
	Path        string `yaml:"path"`
	Type        string `yaml:"type"`
	Value       string `yaml:"value"`
	Description string `yaml:"description,omitempty"`
	// Override is the override key that supplied the value; empty for the default.
	Override string `yaml:"override,omitempty"`
}

type described interface {
	Description() string
}

// Resolve computes the value of every property of req for its scheme, in
// tree walk order.
func Resolve(req Request) (*ResolvedFile, diagnostic.Diagnostics, error) {
	f, diags, err := prepare(req)
	if err != nil {
		return nil, diags, err
	}

	rf := &ResolvedFile{Name: req.Name, Scheme: req.Scheme, Properties: []ResolvedProperty{}}

	err = f.root.Walk(func(path string, node *tree.Configuration, p property.Property) error {
		value, matched, err := p.Value(f.ctx, node.RequestKey(p, f.ctx.Resolver, req.Scheme))
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}

		rp := ResolvedProperty{
			Path:     path,
			Type:     p.TypeName(),
			Value:    value,
			Override: matched,
		}

		if d, ok := p.(described); ok {
			rp.Description = d.Description()
		}

		rf.Properties = append(rf.Properties, rp)

		return nil
	})
	if err != nil {
		return nil, diags, err
	}

	return rf, diags, nil
}

// ExportResolvedYAML renders the resolved values of req as YAML.
func ExportResolvedYAML(req Request) ([]byte, diagnostic.Diagnostics, error) {
	rf, diags, err := Resolve(req)
	if err != nil {
		return nil, diags, err
	}

	out, err := yaml.Marshal(rf)
	if err != nil {
		return nil, diags, fmt.Errorf("marshalling resolved values: %w", err)
	}

	return out, diags, nil
}
