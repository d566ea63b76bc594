package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueFor(t *testing.T) {
	overrides := map[string]string{
		"hello":   "hello value",
		"pattern": "pattern value",
	}

	tests := []struct {
		name      string
		scheme    string
		exactOnly bool
		expected  string
	}{
		{name: "exact match", scheme: "hello", expected: "hello value"},
		{name: "pattern match", scheme: "match-a-pattern", expected: "pattern value"},
		{name: "no match uses default", scheme: "any", expected: "default"},
		{name: "exact only ignores patterns", scheme: "match-a-pattern", exactOnly: true, expected: "default"},
		{name: "exact only literal", scheme: "hello", exactOnly: true, expected: "hello value"},
	}

	r := NewResolver(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValueFor(r, "default", overrides, tt.scheme, tt.exactOnly))
		})
	}
}

func TestResolve_ExactBeatsPattern(t *testing.T) {
	r := NewResolver(nil)

	// "^d" sorts before "dev" and also matches, the literal key still wins.
	v, key, ok := Resolve(r, map[string]string{"^d": "pattern", "dev": "exact"}, "dev", false)
	assert.True(t, ok)
	assert.Equal(t, "dev", key)
	assert.Equal(t, "exact", v)
}

func TestResolve_LexicographicTieBreak(t *testing.T) {
	r := NewResolver(nil)
	overrides := map[string]int{"b": 2, "a": 1, "c": 3}

	for range 20 {
		v, key, ok := Resolve(r, overrides, "abc", false)
		assert.True(t, ok)
		assert.Equal(t, "a", key)
		assert.Equal(t, 1, v)
	}
}

func TestResolve_Aliases(t *testing.T) {
	r := NewResolver([]Pattern{
		{Alias: "release", Pattern: "^Release"},
		{Alias: "release", Pattern: "ignored"},
		{Alias: "nonProd", Pattern: "^(?!Release)"},
	})

	assert.Equal(t, "^Release", r.Expand("release"))
	assert.Equal(t, "unknown", r.Expand("unknown"))

	overrides := map[string]string{"release": "live", "nonProd": "test"}

	assert.Equal(t, "live", ValueFor(r, "default", overrides, "ReleaseStaging", false))
	assert.Equal(t, "test", ValueFor(r, "default", overrides, "Debug", false))
}

func TestResolve_AliasKeyMatchesThroughPattern(t *testing.T) {
	r := NewResolver([]Pattern{{Alias: "prod", Pattern: "^production$"}})
	overrides := map[string]string{"prod": "live"}

	_, _, ok := Resolve(r, overrides, "prod", false)
	assert.False(t, ok)

	v, key, ok := Resolve(r, overrides, "production", false)
	assert.True(t, ok)
	assert.Equal(t, "prod", key)
	assert.Equal(t, "live", v)

	v, _, ok = Resolve(r, overrides, "prod", true)
	assert.True(t, ok, "exact only compares keys literally")
	assert.Equal(t, "live", v)
}

func TestResolve_InvalidPatternNeverMatches(t *testing.T) {
	r := NewResolver(nil)

	_, _, ok := Resolve(r, map[string]string{"(": "broken"}, "(", false)
	assert.True(t, ok, "literal equality still applies")

	_, _, ok = Resolve(r, map[string]string{"(": "broken"}, "a(b", false)
	assert.False(t, ok)
}

func TestResolve_Empty(t *testing.T) {
	r := NewResolver(nil)

	_, _, ok := Resolve[string](r, nil, "any", false)
	assert.False(t, ok)
}
