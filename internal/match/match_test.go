package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"colour", "color", 1},
		{"primaryColour", "primaryColor", 1},
		{"grün", "grun", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
	assert.InDelta(t, 1.0, NormalizedSimilarity("primary_colour", "primaryColour"), 0.001)
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"primaryColour", "primarycolour"},
		{"primary_colour", "primarycolour"},
		{"Primary.Colour", "primarycolour"},
		{"apiURL", "apiurl"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"backgroundColour", []string{"background", "colour"}},
		{"URLScheme", []string{"url", "scheme"}},
		{"apiURL", []string{"api", "url"}},
		{"colours.primary", []string{"colours", "primary"}},
		{"ALLCAPS", []string{"allcaps"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIdent(tt.input))
		})
	}
}

func TestRank(t *testing.T) {
	ranked := Rank("primaryColor", []string{"secondaryColour", "primaryColour", "primaryColor", "fontSize"})

	require.Len(t, ranked, 3)
	assert.Equal(t, "primaryColour", ranked[0].Name)
	assert.Equal(t, "fontSize", ranked[2].Name)
}

func TestCandidateList(t *testing.T) {
	list := CandidateList{
		{Name: "b", Score: 0.7},
		{Name: "a", Score: 0.7},
		{Name: "c", Score: 0.2},
	}

	assert.Len(t, list.Top(2), 2)
	assert.Len(t, list.Top(10), 3)
	assert.Len(t, list.AboveThreshold(0.5), 2)
	assert.Empty(t, CandidateList{}.Top(1))
}

func TestSuggest(t *testing.T) {
	names := []string{"backgroundColour", "textColour", "buttonSize", "backgroundImage"}

	assert.Equal(t, []string{"backgroundColour"}, Suggest("backgroundColor", names, 1))
	assert.Empty(t, Suggest("zzz", names, 3))
	assert.Equal(t, []string{"backgroundColour", "backgroundImage"}, Suggest("backgroundColours", names, 2))
}
