// Package theme maps the syntactic roles of rendered JSON to terminal styles.
//
// A Theme is an immutable value holding one StyleSpec per Role. Lookups are
// total: every role always has a style, possibly the zero "no style" spec.
//
//	t := theme.Default().
//		WithRole(theme.RolePunctuation, theme.StyleSpec{Faint: true})
//	t.StyleFor(theme.RoleObjectKey) // blue, intense
//
// Themes can also be loaded from YAML or TOML files:
//
//	name: ocean
//	base: default
//	roles:
//	  key: {foreground: "#3d9eff", bold: true}
//	  string: {foreground: green}
//
// Roles not listed in a file inherit from its base theme ("default" when
// unset, or "plain").
package theme
