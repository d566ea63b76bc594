package configfile

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// TemplateSchema returns the JSON schema of the "template" object, for editor
// completion and validation.
func TemplateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}

	s := r.Reflect(&Template{})
	s.Title = "config-generator template"
	s.Description = `Generation settings stored under the "template" key of a .config file`

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return data, nil
}
