package crypt

import (
	"bytes"
	"crypto/md5" //nolint:gosec // the digest only seeds a published IV
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Canonical serializes v as compact JSON with object keys sorted.
// HTML characters are not escaped and json.Number values keep their literal text.
func Canonical(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding canonical JSON: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Hash returns the hex encoded MD5 digest of the canonical form of v.
func Hash(v any) (string, error) {
	data, err := Canonical(v)
	if err != nil {
		return "", err
	}

	sum := md5.Sum(data) //nolint:gosec

	return hex.EncodeToString(sum[:]), nil
}
