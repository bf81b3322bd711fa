// pkg/theme/theme_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test role lookups, immutability of theme modifiers and built-ins

package theme_test

import (
	"sync"
	"testing"

	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	th := theme.Default()

	assert.Equal(t, "default", th.Name())
	assert.Equal(t, theme.StyleSpec{Foreground: "blue", Intense: true}, th.StyleFor(theme.RoleObjectKey))
	assert.Equal(t, theme.StyleSpec{Foreground: "green"}, th.StyleFor(theme.RoleString))
	assert.Equal(t, theme.StyleSpec{Foreground: "cyan"}, th.StyleFor(theme.RoleNumber))
	assert.Equal(t, theme.StyleSpec{Foreground: "cyan", Bold: true}, th.StyleFor(theme.RoleBool))
	assert.Equal(t, theme.StyleSpec{Foreground: "cyan", Bold: true}, th.StyleFor(theme.RoleNull))
	assert.True(t, th.StyleFor(theme.RolePunctuation).IsZero())
	assert.False(t, th.IsPlain())
}

func TestPlainTheme(t *testing.T) {
	th := theme.Plain()
	for _, role := range theme.AllRoles() {
		assert.True(t, th.StyleFor(role).IsZero(), "role %s should be unstyled", role)
	}
	assert.True(t, th.IsPlain())
}

func TestWithRole(t *testing.T) {
	style := theme.StyleSpec{Foreground: "#ff8800", Underline: true}

	for _, role := range theme.AllRoles() {
		t.Run(role.String(), func(t *testing.T) {
			base := theme.Default()
			next := base.WithRole(role, style)

			assert.Equal(t, style, next.StyleFor(role))
			for _, other := range theme.AllRoles() {
				if other == role {
					continue
				}
				assert.Equal(t, base.StyleFor(other), next.StyleFor(other), "role %s changed", other)
			}
			// The receiver is untouched.
			assert.True(t, base.Equal(theme.Default()))
		})
	}
}

func TestStyleForIsTotal(t *testing.T) {
	th := theme.Default()
	assert.True(t, th.StyleFor(theme.Role(-1)).IsZero())
	assert.True(t, th.StyleFor(theme.Role(99)).IsZero())
	assert.True(t, th.WithRole(theme.Role(99), theme.StyleSpec{Bold: true}).Equal(th))
}

func TestRoleNames(t *testing.T) {
	for _, role := range theme.AllRoles() {
		parsed, err := theme.ParseRole(role.String())
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}

	aliases := map[string]theme.Role{
		"object_key": theme.RoleObjectKey,
		"Object-Key": theme.RoleObjectKey,
		"boolean":    theme.RoleBool,
		"punct":      theme.RolePunctuation,
	}
	for name, want := range aliases {
		got, err := theme.ParseRole(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := theme.ParseRole("comment")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeInvalid))
	assert.Equal(t, "comment", errors.GetErrorDetails(err)["role"])
	assert.Equal(t, "unknown", theme.Role(42).String())
}

func TestStyleSpecString(t *testing.T) {
	assert.Equal(t, "none", theme.StyleSpec{}.String())
	assert.Equal(t, "blue+intense", theme.StyleSpec{Foreground: "blue", Intense: true}.String())
	assert.Equal(t, "cyan bold", theme.StyleSpec{Foreground: "cyan", Bold: true}.String())
	assert.Equal(t, "on #222 faint italic", theme.StyleSpec{Background: "#222", Faint: true, Italic: true}.String())
}

func TestResolvedForeground(t *testing.T) {
	assert.Equal(t, theme.Color("12"), theme.StyleSpec{Foreground: "blue", Intense: true}.ResolvedForeground())
	assert.Equal(t, theme.Color("blue"), theme.StyleSpec{Foreground: "blue"}.ResolvedForeground())
	assert.Equal(t, theme.Color("bright-red"), theme.StyleSpec{Foreground: "bright-red", Intense: true}.ResolvedForeground())
	assert.Equal(t, theme.Color("#abcdef"), theme.StyleSpec{Foreground: "#abcdef", Intense: true}.ResolvedForeground())
}

func TestNamed(t *testing.T) {
	assert.Equal(t, []string{"default", "jq", "plain"}, theme.Names())

	for _, name := range theme.Names() {
		th, ok := theme.Named(name)
		require.True(t, ok, name)
		assert.Equal(t, name, th.Name())
	}

	none, ok := theme.Named("none")
	require.True(t, ok)
	assert.True(t, none.IsPlain())

	_, ok = theme.Named("solarized")
	assert.False(t, ok)
}

func TestDefaultIsFreshValue(t *testing.T) {
	a := theme.Default()
	_ = a.WithRole(theme.RoleString, theme.StyleSpec{Foreground: "red"})
	assert.Equal(t, theme.Color("green"), theme.Default().StyleFor(theme.RoleString).Foreground)
}

func TestBuiltinTablesAreCopies(t *testing.T) {
	styles := theme.DefaultStyles()
	styles[theme.RoleString] = theme.StyleSpec{Foreground: "red"}
	delete(styles, theme.RoleObjectKey)

	jq := theme.JQStyles()
	jq[theme.RoleNull] = theme.StyleSpec{Foreground: "red"}

	assert.Equal(t, theme.StyleSpec{Foreground: "green"}, theme.Default().StyleFor(theme.RoleString))
	assert.Equal(t, theme.StyleSpec{Foreground: "blue", Intense: true}, theme.Default().StyleFor(theme.RoleObjectKey))
	assert.Equal(t, theme.StyleSpec{Foreground: "bright-black"}, theme.JQ().StyleFor(theme.RoleNull))
	assert.Equal(t, theme.StyleSpec{Foreground: "green"}, theme.DefaultStyles()[theme.RoleString])
}

func TestStyleSpecValidate(t *testing.T) {
	assert.NoError(t, theme.StyleSpec{Foreground: "red", Background: "#000"}.Validate())

	err := theme.StyleSpec{Background: "#12"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeInvalid))
	assert.Contains(t, err.Error(), "background")
}

func TestConcurrentReads(t *testing.T) {
	th := theme.Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, role := range theme.AllRoles() {
				_ = th.StyleFor(role)
				_ = th.WithRole(role, theme.StyleSpec{Bold: i%2 == 0})
			}
		}(i)
	}
	wg.Wait()
	assert.True(t, th.Equal(theme.Default()))
}
