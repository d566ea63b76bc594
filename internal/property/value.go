package property

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"config-generator/internal/crypt"
)

var (
	// ErrMissingEncryptionKey is returned when an Encrypted value is rendered
	// in a file that declares no EncryptionKey property.
	ErrMissingEncryptionKey = errors.New("no encryption key present to encrypt value")
	// ErrUnconvertible is returned when a raw JSON value does not fit the declared type.
	ErrUnconvertible = errors.New("value is not convertible to the declared type")
)

// Appearance is the light/dark pair of a dynamic colour.
type Appearance struct {
	Light string
	Dark  string
}

// Convert turns a decoded JSON value into the Go representation used for tag t.
//
//   - textual tags: string
//   - String?: string or nil
//   - Int: int64, Int?: int64 or nil
//   - Double, Float: float64
//   - Bool: bool
//   - Dictionary: map[string]any
//   - [String]: []string
//   - DynamicColour, DynamicColourReference: Appearance
//
// Optional tags convert anything that is not a valid value to nil.
func Convert(t Tag, raw any) (any, error) {
	v, ok := convert(t, raw)
	if ok {
		return v, nil
	}

	if t.Optional() {
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %s from %T", ErrUnconvertible, t, raw)
}

func convert(t Tag, raw any) (any, bool) {
	switch t {
	case TagOptionalString:
		s, ok := raw.(string)
		return s, ok
	case TagInt, TagOptionalInt:
		return toInt(raw)
	case TagDouble, TagFloat:
		return toFloat(raw)
	case TagBool:
		b, ok := raw.(bool)
		return b, ok
	case TagDictionary:
		m, ok := raw.(map[string]any)
		return m, ok
	case TagStringArray:
		return toStrings(raw)
	case TagDynamicColour, TagDynamicColourReference:
		return toAppearance(raw)
	default:
		if !t.Textual() {
			return nil, false
		}

		s, ok := raw.(string)

		return s, ok
	}
}

func toInt(raw any) (any, bool) {
	n, ok := raw.(json.Number)
	if !ok {
		return nil, false
	}

	if i, err := n.Int64(); err == nil {
		return i, true
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f >= 0x1p63 || f < -0x1p63 {
		return nil, false
	}

	return int64(f), true
}

func toFloat(raw any) (any, bool) {
	n, ok := raw.(json.Number)
	if !ok {
		return nil, false
	}

	f, err := n.Float64()
	if err != nil {
		return nil, false
	}

	return f, true
}

func toStrings(raw any) (any, bool) {
	list, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	out := make([]string, len(list))
	for i, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}

		out[i] = s
	}

	return out, true
}

func toAppearance(raw any) (any, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}

	light, lok := m["light"].(string)
	dark, dok := m["dark"].(string)

	if !lok || !dok {
		return nil, false
	}

	return Appearance{Light: light, Dark: dark}, true
}

// Secrets carries what an Encrypted value needs to render.
type Secrets struct {
	// IV is the hex digest of the file content.
	IV string
	// Key is the file's encryption key; HasKey is false when none was declared.
	Key    string
	HasKey bool
}

// Literal renders a converted value of tag t as a Swift expression.
func Literal(t Tag, v any, secrets Secrets) (string, error) {
	switch t {
	case TagString:
		return stringLiteral(asString(v)), nil
	case TagOptionalString:
		if v == nil {
			return "nil", nil
		}

		return stringLiteral(asString(v)), nil
	case TagURL:
		return "URL(string: " + quoted(asString(v)) + ")!", nil
	case TagEncryptionKey:
		return byteArray([]byte(asString(v))), nil
	case TagEncrypted:
		return encryptedLiteral(asString(v), secrets)
	case TagDictionary:
		m, _ := v.(map[string]any)
		return dictionaryLiteral(m), nil
	case TagColour:
		return colourLiteral(asString(v)), nil
	case TagImage:
		return "UIImage(named: " + quoted(asString(v)) + ")!", nil
	case TagRegex:
		return "try! NSRegularExpression(pattern: " + stringLiteral(asString(v)) + ", options: [])", nil
	case TagBool:
		b, _ := v.(bool)
		return strconv.FormatBool(b), nil
	case TagInt, TagOptionalInt:
		i, ok := v.(int64)
		if !ok {
			return "nil", nil
		}

		return strconv.FormatInt(i, 10), nil
	case TagDouble, TagFloat:
		f, _ := v.(float64)
		return doubleLiteral(f), nil
	case TagStringArray:
		list, _ := v.([]string)
		parts := make([]string, len(list))

		for i, s := range list {
			parts[i] = quoted(s)
		}

		return "[" + strings.Join(parts, ", ") + "]", nil
	case TagDynamicColour:
		a, _ := v.(Appearance)
		return dynamicColourBlock(colourLiteral(a.Light), colourLiteral(a.Dark)), nil
	case TagDynamicColourReference:
		a, _ := v.(Appearance)
		return dynamicColourBlock(a.Light, a.Dark), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func encryptedLiteral(value string, secrets Secrets) (string, error) {
	if !secrets.HasKey {
		return "", ErrMissingEncryptionKey
	}

	out, err := crypt.EncryptString(value, secrets.Key, secrets.IV)
	if err != nil {
		return "", fmt.Errorf("encrypting value: %w", err)
	}

	return byteArray(out), nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
