package theme

import "sort"

// DefaultStyles returns the role table behind Default. Basic ANSI colors
// follow the terminal's own palette. Each call returns a new map.
func DefaultStyles() map[Role]StyleSpec {
	return map[Role]StyleSpec{
		RoleObjectKey: {Foreground: "blue", Intense: true},
		RoleString:    {Foreground: "green"},
		RoleNumber:    {Foreground: "cyan"},
		RoleBool:      {Foreground: "cyan", Bold: true},
		RoleNull:      {Foreground: "cyan", Bold: true},
	}
}

// JQStyles returns jq's default JQ_COLORS as a role table. Each call returns
// a new map.
func JQStyles() map[Role]StyleSpec {
	return map[Role]StyleSpec{
		RoleObjectKey:   {Foreground: "blue", Bold: true},
		RoleString:      {Foreground: "green"},
		RoleNull:        {Foreground: "bright-black"},
		RolePunctuation: {Bold: true},
	}
}

// Default returns the stock theme. A fresh value is built on every call.
func Default() Theme {
	return New("default", DefaultStyles())
}

// Plain returns a theme with no styling on any role.
func Plain() Theme {
	return Theme{name: "plain"}
}

// JQ returns a theme matching jq's colors.
func JQ() Theme {
	return New("jq", JQStyles())
}

var builtins = map[string]func() Theme{
	"default": Default,
	"plain":   Plain,
	"none":    Plain,
	"jq":      JQ,
}

// Named looks up a built-in theme by name.
func Named(name string) (Theme, bool) {
	ctor, ok := builtins[name]
	if !ok {
		return Theme{}, false
	}
	return ctor(), true
}

// Names lists the built-in theme names, sorted, without aliases.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		if name == "none" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
