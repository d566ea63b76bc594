package property

import (
	"fmt"
	"strconv"
	"strings"
)

// colourLiteral parses "#RRGGBB" (or "#WW" for a grey level) into a UIColor
// expression with channels normalized over 255. Malformed hex reads as 0.
func colourLiteral(value string) string {
	hex := strings.ReplaceAll(value, "#", "")
	rgb := leadingHex(hex)

	if len(hex) == 2 {
		return fmt.Sprintf("UIColor(white: %d.0 / 255.0, alpha: 1.0)", rgb)
	}

	return fmt.Sprintf("UIColor(red: %d.0 / 255.0, green: %d.0 / 255.0, blue: %d.0 / 255.0, alpha: 1.0)",
		(rgb&0xFF0000)>>16, (rgb&0x00FF00)>>8, rgb&0x0000FF)
}

// leadingHex scans the hex digits at the start of s as an unsigned 32-bit value.
func leadingHex(s string) uint64 {
	end := 0
	for end < len(s) && isHex(s[end]) {
		end++
	}

	if end == 0 {
		return 0
	}

	v, err := strconv.ParseUint(s[:end], 16, 32)
	if err != nil {
		return 0
	}

	return v
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// dynamicColourBlock renders the body of a computed colour property that
// follows the system appearance, falling back to light before iOS 13.
func dynamicColourBlock(light, dark string) string {
	return strings.Join([]string{
		"if #available(iOS 13, *) {",
		"    return UIColor(dynamicProvider: {",
		"        if $0.userInterfaceStyle == .dark {",
		"            return " + dark,
		"        } else {",
		"            return " + light,
		"        }",
		"    })",
		"} else {",
		"    return " + light,
		"}",
	}, "\n")
}
