package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"config-generator/internal/diagnostic"
	"config-generator/internal/gen"
	"config-generator/internal/settings"
)

const themeConfig = `{
	"title": {"type": "String", "defaultValue": "Default", "overrides": {"prod": "Production"}},
	"colours": {"primary": {"type": "Colour", "defaultValue": "#FF0000"}}
}`

func givenAFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, data := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(data), 0o644))
	}

	return fs
}

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(fs, "/work")

	var out, logs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestGenerate(t *testing.T) {
	fs := givenAFs(t, map[string]string{"/cfg/Theme.config": themeConfig})

	out, err := execute(t, fs, "--scheme", "prod", "--config-path", "/cfg")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	assert.Contains(t, out, "/cfg/Theme.swift")

	data, err := afero.ReadFile(fs, "/cfg/Theme.swift")
	require.NoError(t, err)
	assert.Contains(t, string(data), `public static let title: String = #"Production"#`)

	out, err = execute(t, fs, "generate", "--scheme", "prod", "--config-path", "/cfg")
	require.NoError(t, err)
	assert.Contains(t, out, "/cfg/Theme.swift as it has not changed")
}

func TestGenerate_LegacyFlags(t *testing.T) {
	fs := givenAFs(t, map[string]string{"/cfg/Theme.config": themeConfig})

	_, err := execute(t, fs, "--name", "prod", "--configPath", "/cfg", "--ext", "generated")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "/cfg/Theme.generated.swift")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGenerate_DryRun(t *testing.T) {
	fs := givenAFs(t, map[string]string{"/cfg/Theme.config": themeConfig})

	out, err := execute(t, fs, "generate", "-s", "prod", "-c", "/cfg", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would write")

	exists, err := afero.Exists(fs, "/cfg/Theme.swift")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenerate_SettingsFile(t *testing.T) {
	fs := givenAFs(t, map[string]string{
		"/cfg/Theme.config":           themeConfig,
		"/work/" + settings.FileName: "scheme: prod\nconfig-path: /cfg\nworkers: 1\n",
	})

	out, err := execute(t, fs, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "/cfg/Theme.swift")
}

func TestGenerate_Errors(t *testing.T) {
	fs := givenAFs(t, map[string]string{
		"/cfg/Theme.config":  themeConfig,
		"/cfg/Broken.config": `{"a": `,
	})

	_, err := execute(t, fs, "--config-path", "/cfg")
	require.ErrorIs(t, err, settings.ErrMissingScheme)

	out, err := execute(t, fs, "--scheme", "prod", "--config-path", "/cfg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, out, "Failed")
	assert.Contains(t, out, "/cfg/Broken.config")
	assert.Contains(t, out, "/cfg/Theme.swift")

	_, err = execute(t, fs, "--scheme", "prod", "--config-path", "/missing")
	require.Error(t, err)

	_, err = execute(t, fs, "--scheme", "prod", "--config-path", "/cfg", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestResolve(t *testing.T) {
	fs := givenAFs(t, map[string]string{"/cfg/Theme.config": themeConfig})

	out, err := execute(t, fs, "resolve", "/cfg/Theme.config", "--scheme", "prod")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Theme\n")
	assert.Contains(t, out, "scheme: prod\n")
	assert.Contains(t, out, "path: colours.primary")
	assert.Contains(t, out, "override: prod")

	_, err = execute(t, fs, "resolve", "/cfg/Theme.config")
	require.ErrorIs(t, err, settings.ErrMissingScheme)

	_, err = execute(t, fs, "resolve")
	require.Error(t, err)
}

func TestSchema(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"referenceSource"`)
	assert.Contains(t, out, `"customTypes"`)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestStyles_Line(t *testing.T) {
	s := NewStyles(&bytes.Buffer{})

	var warned diagnostic.Diagnostics
	warned.AddWarning(diagnostic.CodeInvalidOverride, "dropped", "/cfg/A.config", "a")
	warned.AddWarning(diagnostic.CodeInvalidOverride, "dropped", "/cfg/A.config", "b")

	line := s.Line(gen.Result{Path: "/cfg/A.config", Output: "/cfg/A.swift", Status: gen.StatusWrote, Diagnostics: warned})
	assert.Contains(t, line, "Wrote")
	assert.Contains(t, line, "/cfg/A.swift")
	assert.Contains(t, line, "(2 warnings)")

	var failed diagnostic.Diagnostics
	failed.AddError(diagnostic.CodeGenerationFailed, "boom", "/cfg/B.config", "")

	line = s.Line(gen.Result{Path: "/cfg/B.config", Status: gen.StatusFailed, Diagnostics: failed})
	assert.Contains(t, line, "Failed")
	assert.Contains(t, line, "[/cfg/B.config]: [generation_failed] boom")
	assert.NotContains(t, line, "warnings")
}
