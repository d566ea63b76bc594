package configfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// Extension is the file extension of configuration files.
const Extension = ".config"

// ErrMalformedInput is returned when data does not decode to a JSON object.
var ErrMalformedInput = errors.New("configuration is not a JSON object")

// Parse strips JSONC comments and trailing commas from data, then decodes
// the result into a raw object.
func Parse(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformedInput)
	}

	object, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrMalformedInput, v)
	}

	return object, nil
}

// ReadFile reads and parses the configuration file at path.
func ReadFile(fs afero.Fs, path string) (map[string]any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	object, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return object, nil
}

// NameFromPath strips the directory and the .config extension:
// "Sources/Config/Colours.config" returns "Colours".
func NameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), Extension)
}
