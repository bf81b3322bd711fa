package theme

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/jsontint/pkg/errors"
)

// Role is the syntactic category of a rendered JSON token.
type Role int

const (
	// RoleObjectKey styles object member names, quotes included.
	RoleObjectKey Role = iota
	// RoleString styles string values, quotes included.
	RoleString
	// RoleNumber styles numeric literals.
	RoleNumber
	// RoleBool styles the true and false literals.
	RoleBool
	// RoleNull styles the null literal.
	RoleNull
	// RolePunctuation styles braces, brackets, colons and commas.
	RolePunctuation

	roleCount
)

// AllRoles returns every role in declaration order.
func AllRoles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

var roleNames = [roleCount]string{
	RoleObjectKey:   "key",
	RoleString:      "string",
	RoleNumber:      "number",
	RoleBool:        "bool",
	RoleNull:        "null",
	RolePunctuation: "punctuation",
}

// String returns the name used for the role in theme files.
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// ParseRole parses a role name as written in theme files.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "key", "object_key", "object-key", "objectkey":
		return RoleObjectKey, nil
	case "string":
		return RoleString, nil
	case "number":
		return RoleNumber, nil
	case "bool", "boolean":
		return RoleBool, nil
	case "null":
		return RoleNull, nil
	case "punctuation", "punct":
		return RolePunctuation, nil
	default:
		return 0, errors.Newf(errors.ErrThemeInvalid, "unknown role %q", s).
			WithDetail("role", s)
	}
}

// StyleSpec describes how a token is drawn, independent of any terminal API.
// The zero value means "no styling".
type StyleSpec struct {
	Foreground Color
	Background Color
	Bold       bool
	// Intense selects the bright variant of a basic ANSI foreground.
	Intense   bool
	Faint     bool
	Italic    bool
	Underline bool
}

// IsZero reports whether s carries no styling at all.
func (s StyleSpec) IsZero() bool {
	return s == StyleSpec{}
}

// Validate checks both colors.
func (s StyleSpec) Validate() error {
	if err := s.Foreground.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrThemeInvalid, "invalid foreground")
	}
	if err := s.Background.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrThemeInvalid, "invalid background")
	}
	return nil
}

// ResolvedForeground returns the foreground with Intense applied: a basic
// ANSI color (0-7) is promoted to its bright counterpart (8-15).
func (s StyleSpec) ResolvedForeground() Color {
	if !s.Intense {
		return s.Foreground
	}
	if idx, ok := s.Foreground.ANSIIndex(); ok && idx < 8 {
		return Color(fmt.Sprint(idx + 8))
	}
	return s.Foreground
}

// String renders s in a compact human readable form, e.g. "blue+intense bold".
func (s StyleSpec) String() string {
	if s.IsZero() {
		return "none"
	}
	var parts []string
	if s.Foreground != "" {
		fg := string(s.Foreground)
		if s.Intense {
			fg += "+intense"
		}
		parts = append(parts, fg)
	} else if s.Intense {
		parts = append(parts, "intense")
	}
	if s.Background != "" {
		parts = append(parts, "on "+string(s.Background))
	}
	for _, attr := range []struct {
		on   bool
		name string
	}{
		{s.Bold, "bold"},
		{s.Faint, "faint"},
		{s.Italic, "italic"},
		{s.Underline, "underline"},
	} {
		if attr.on {
			parts = append(parts, attr.name)
		}
	}
	return strings.Join(parts, " ")
}

// Theme maps every Role to a StyleSpec. Themes are values: every modifier
// returns a new Theme, so one instance can be shared across goroutines.
type Theme struct {
	name   string
	styles [roleCount]StyleSpec
}

// New builds a theme from a role table. Roles missing from the table get no styling.
func New(name string, styles map[Role]StyleSpec) Theme {
	t := Theme{name: name}
	for role, spec := range styles {
		if role >= 0 && role < roleCount {
			t.styles[role] = spec
		}
	}
	return t
}

// Name returns the theme's display name.
func (t Theme) Name() string {
	return t.name
}

// WithName returns a copy of the theme under a different name.
func (t Theme) WithName(name string) Theme {
	t.name = name
	return t
}

// WithRole returns a copy of the theme with one role rebound.
func (t Theme) WithRole(role Role, style StyleSpec) Theme {
	if role < 0 || role >= roleCount {
		return t
	}
	t.styles[role] = style
	return t
}

// StyleFor returns the style for role. It never fails; roles outside the
// enumeration get the zero style.
func (t Theme) StyleFor(role Role) StyleSpec {
	if role < 0 || role >= roleCount {
		return StyleSpec{}
	}
	return t.styles[role]
}

// Roles returns a copy of the role table.
func (t Theme) Roles() map[Role]StyleSpec {
	out := make(map[Role]StyleSpec, roleCount)
	for r := Role(0); r < roleCount; r++ {
		out[r] = t.styles[r]
	}
	return out
}

// IsPlain reports whether no role carries any styling.
func (t Theme) IsPlain() bool {
	for _, s := range t.styles {
		if !s.IsZero() {
			return false
		}
	}
	return true
}

// Equal compares role tables; names are ignored.
func (t Theme) Equal(other Theme) bool {
	return t.styles == other.styles
}
