package property

// Tag identifies the declared type of a scalar property.
type Tag int

//go:generate go tool stringer -type=Tag -linecomment -output=tag_string.go

const (
	// TagNone marks an untyped scalar: its type name is the raw type hint and
	// its value is written verbatim.
	TagNone Tag = iota // none

	TagString                 // String
	TagOptionalString         // String?
	TagURL                    // URL
	TagEncrypted              // Encrypted
	TagEncryptionKey          // EncryptionKey
	TagInt                    // Int
	TagOptionalInt            // Int?
	TagDouble                 // Double
	TagFloat                  // Float
	TagDictionary             // Dictionary
	TagBool                   // Bool
	TagStringArray            // [String]
	TagColour                 // Colour
	TagReference              // Reference
	TagImage                  // Image
	TagRegex                  // Regex
	TagDynamicColour          // DynamicColour
	TagDynamicColourReference // DynamicColourReference

	// TagTotal is the number of tags, TagNone included.
	TagTotal = int(iota)
)

// ParseTag maps the raw "type" field of a property to its Tag.
func ParseTag(raw string) (Tag, bool) {
	if raw == "" {
		return TagNone, false
	}

	for t := TagString; int(t) < TagTotal; t++ {
		if t.String() == raw {
			return t, true
		}
	}

	return TagNone, false
}

// Raw returns the "type" field spelling of the tag, which is empty for
// TagNone and out of range values.
func (t Tag) Raw() string {
	if t <= TagNone || int(t) >= TagTotal {
		return ""
	}

	return t.String()
}

// TypeName returns the Swift type written in the declaration.
func (t Tag) TypeName() string {
	switch t {
	case TagEncrypted, TagEncryptionKey:
		return "[UInt8]"
	case TagDictionary:
		return "[String: Any]"
	case TagColour, TagDynamicColour, TagDynamicColourReference:
		return "UIColor"
	case TagImage:
		return "UIImage"
	case TagRegex:
		return "NSRegularExpression"
	default:
		return t.Raw()
	}
}

// Computed reports whether the tag renders as a computed property whose value
// block supplies its own return statements.
func (t Tag) Computed() bool {
	return t == TagDynamicColour || t == TagDynamicColourReference
}

// Optional reports whether a missing or null default is rendered as nil
// instead of dropping the property.
func (t Tag) Optional() bool {
	return t == TagOptionalString || t == TagOptionalInt
}

// Textual reports whether the tag stores a Go string.
func (t Tag) Textual() bool {
	switch t {
	case TagNone, TagString, TagURL, TagEncrypted, TagEncryptionKey,
		TagColour, TagImage, TagRegex, TagReference:
		return true
	default:
		return false
	}
}
