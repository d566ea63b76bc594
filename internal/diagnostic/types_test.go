package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "dropped"},
			expected: "dropped",
		},
		{
			name:     "with code and location",
			diag:     Diagnostic{Code: CodeInvalidOverride, Message: "dropped", File: "Theme.config", Path: "colours.primary"},
			expected: "[Theme.config] colours.primary: [invalid_override] dropped",
		},
		{
			name: "with suggestions",
			diag: Diagnostic{
				Code:        CodeUnresolvedReference,
				Message:     `"primaryColor" does not exist`,
				Path:        "accent",
				Suggestions: []string{"primaryColour"},
			},
			expected: `accent: [unresolved_reference] "primaryColor" does not exist (did you mean primaryColour?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.False(t, d.HasWarnings())
	require.NoError(t, d.Error())

	d.AddWarning(CodeInvalidOverride, "b", "", "z")
	d.AddWarning(CodeUnconvertibleDefault, "a", "", "a")

	var other Diagnostics
	other.AddError("broken", "first", "A.config", "")
	other.AddError("broken", "second", "B.config", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.True(t, d.HasWarnings())
	require.EqualError(t, d.Error(), "[A.config]: [broken] first; [B.config]: [broken] second")

	stamped := d.WithFile("Theme.config")
	stamped.Sort()
	assert.Equal(t, []string{CodeUnconvertibleDefault, CodeInvalidOverride}, stamped.Codes())
	assert.Equal(t, "Theme.config", stamped.Warnings[0].File)
	assert.Equal(t, "A.config", stamped.Errors[0].File)
	assert.Empty(t, d.Warnings[0].File, "WithFile does not mutate the receiver")
}
