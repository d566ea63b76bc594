package property

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// quoted returns s as an escaped Swift string literal.
func quoted(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}

// stringLiteral renders a Swift raw string literal (#"..."#), adding
// delimiters until the content cannot terminate or escape the literal.
// Empty strings render as "" and multi-line strings as escaped literals.
func stringLiteral(s string) string {
	if s == "" {
		return `""`
	}

	if strings.ContainsAny(s, "\r\n") {
		return quoted(s)
	}

	hashes := "#"
	for strings.Contains(s, `"`+hashes) || strings.Contains(s, `\`+hashes) {
		hashes += "#"
	}

	return hashes + `"` + s + `"` + hashes
}

// byteArray renders b as a Swift [UInt8] literal.
func byteArray(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = "UInt8(" + strconv.Itoa(int(c)) + ")"
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// doubleLiteral renders f the way Swift prints a Double: integral values keep
// a trailing ".0".
func doubleLiteral(f float64) string {
	abs := math.Abs(f)

	switch {
	case math.IsInf(f, 0) || math.IsNaN(f):
		return strconv.FormatFloat(f, 'g', -1, 64)
	case f == math.Trunc(f) && abs < 1e16:
		return strconv.FormatFloat(f, 'f', 1, 64)
	case abs >= 1e-4 && abs < 1e16:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// numberLiteral renders a JSON number in its shortest form.
func numberLiteral(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}

	if f, err := n.Float64(); err == nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return n.String()
}

// dictionaryLiteral renders a [String: Any] literal with keys sorted.
func dictionaryLiteral(m map[string]any) string {
	if len(m) == 0 {
		return "[:]"
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = quoted(k) + ": " + anyLiteral(m[k])
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// anyLiteral renders a decoded JSON value as a Swift literal.
func anyLiteral(v any) string {
	switch v := v.(type) {
	case nil:
		return "NSNull()"
	case string:
		return quoted(v)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return numberLiteral(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]any:
		return dictionaryLiteral(v)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = anyLiteral(e)
		}

		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

// bareToken renders a decoded JSON value without quoting strings.
func bareToken(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return anyLiteral(v)
	}
}

// Indent returns the leading whitespace for a declaration at the given depth.
func Indent(width int) string {
	return strings.Repeat("    ", width+1)
}

// reindent prefixes every line of block with the indentation for width.
func reindent(block string, width int) string {
	prefix := Indent(width)
	lines := strings.Split(block, "\n")

	for i, l := range lines {
		if l == "" {
			continue
		}

		lines[i] = prefix + l
	}

	return strings.Join(lines, "\n")
}

// Capitalise upper-cases the first letter of s.
func Capitalise(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)

	return strings.ToUpper(string(r[0])) + string(r[1:])
}
