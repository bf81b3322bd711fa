// pkg/theme/file_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testdata theme files
// PURPOSE: Test YAML/TOML theme decoding, inheritance and validation errors

package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadFileYAML(t *testing.T) {
	th, err := theme.LoadFile(filepath.Join("testdata", "ocean.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "ocean", th.Name())
	assert.Equal(t, theme.StyleSpec{Foreground: "#3d9eff", Bold: true}, th.StyleFor(theme.RoleObjectKey))
	assert.Equal(t, theme.StyleSpec{Faint: true}, th.StyleFor(theme.RolePunctuation))
	// Inherited from the default base.
	assert.Equal(t, theme.Default().StyleFor(theme.RoleString), th.StyleFor(theme.RoleString))
}

func TestLoadFileTOML(t *testing.T) {
	th, err := theme.LoadFile(filepath.Join("testdata", "mono.toml"))
	require.NoError(t, err)

	assert.Equal(t, "mono", th.Name(), "name falls back to the file name")
	assert.Equal(t, theme.StyleSpec{Bold: true}, th.StyleFor(theme.RoleObjectKey))
	assert.Equal(t, theme.StyleSpec{Underline: true}, th.StyleFor(theme.RoleString))
	assert.True(t, th.StyleFor(theme.RoleNumber).IsZero(), "plain base leaves other roles unstyled")
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.ErrorCode
	}{
		{"missing file", filepath.Join("testdata", "missing.yaml"), errors.ErrThemeLoad},
		{"unknown extension", filepath.Join("testdata", "theme.json"), errors.ErrThemeLoad},
		{"syntax error", filepath.Join("testdata", "broken.yaml"), errors.ErrThemeParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := theme.LoadFile(tt.path)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		role string
	}{
		{"unknown role", "roles:\n  comment: {bold: true}\n", "comment"},
		{"bad color", "roles:\n  key: {foreground: chartreuse}\n", "key"},
		{"bad background", "roles:\n  null: {background: \"#12\"}\n", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := theme.Parse([]byte(tt.data), theme.FormatYAML)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrThemeInvalid))
			assert.Equal(t, tt.role, errors.GetErrorDetails(err)["role"])
		})
	}

	_, err := theme.Parse([]byte("base: solarized\n"), theme.FormatYAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeInvalid))

	_, err = theme.Parse([]byte("{}"), theme.Format("json"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeParse))
}

func TestParseYAMLNullRole(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bare key", "base: plain\nroles:\n  null: {foreground: red}\n"},
		{"quoted key", "base: plain\nroles:\n  \"null\": {foreground: red}\n"},
		{"block style", "base: plain\nroles:\n  null:\n    foreground: red\n  key:\n    bold: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := theme.Parse([]byte(tt.data), theme.FormatYAML)
			require.NoError(t, err)
			assert.Equal(t, theme.StyleSpec{Foreground: "red"}, th.StyleFor(theme.RoleNull))
		})
	}
}

func TestParseYAMLRolesShape(t *testing.T) {
	th, err := theme.Parse([]byte("name: bare\nroles: ~\n"), theme.FormatYAML)
	require.NoError(t, err)
	assert.True(t, th.Equal(theme.Default()))

	th, err = theme.Parse([]byte("name: bare\n"), theme.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "bare", th.Name())

	_, err = theme.Parse([]byte("roles: [key, string]\n"), theme.FormatYAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeParse), "got %v", err)

	_, err = theme.Parse([]byte("roles:\n  key: {bold: maybe}\n"), theme.FormatYAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeParse), "got %v", err)
}

func TestParseTOMLNullRole(t *testing.T) {
	th, err := theme.Parse([]byte("base = \"plain\"\n[roles.null]\nforeground = \"red\"\n"), theme.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, theme.StyleSpec{Foreground: "red"}, th.StyleFor(theme.RoleNull))
}

func TestToFileRoundTrip(t *testing.T) {
	original := theme.JQ()

	data, err := yaml.Marshal(theme.ToFile(original))
	require.NoError(t, err)

	decoded, err := theme.Parse(data, theme.FormatYAML)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
	assert.Equal(t, "jq", decoded.Name())
}

func TestResolve(t *testing.T) {
	th, err := theme.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "default", th.Name())

	th, err = theme.Resolve("jq")
	require.NoError(t, err)
	assert.Equal(t, "jq", th.Name())

	path := filepath.Join(t.TempDir(), "warm.yml")
	require.NoError(t, os.WriteFile(path, []byte("roles:\n  number: {foreground: yellow}\n"), 0644))
	th, err = theme.Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "warm", th.Name())
	assert.Equal(t, theme.Color("yellow"), th.StyleFor(theme.RoleNumber).Foreground)

	_, err = theme.Resolve("solarized")
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeInvalid))
}
