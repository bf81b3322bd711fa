package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a theme file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// StyleDef is the on-disk form of a StyleSpec.
type StyleDef struct {
	Foreground string `yaml:"foreground,omitempty" toml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty" toml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty" toml:"bold,omitempty"`
	Intense    bool   `yaml:"intense,omitempty" toml:"intense,omitempty"`
	Faint      bool   `yaml:"faint,omitempty" toml:"faint,omitempty"`
	Italic     bool   `yaml:"italic,omitempty" toml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty" toml:"underline,omitempty"`
}

// File is the on-disk form of a theme. Roles not listed inherit from Base.
type File struct {
	Name  string              `yaml:"name,omitempty" toml:"name,omitempty"`
	Base  string              `yaml:"base,omitempty" toml:"base,omitempty"`
	Roles map[string]StyleDef `yaml:"roles" toml:"roles"`
}

// UnmarshalYAML keeps role names as written. An unquoted null key is the
// YAML null scalar, which a map[string] target would silently drop.
func (f *File) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Name  string    `yaml:"name"`
		Base  string    `yaml:"base"`
		Roles yaml.Node `yaml:"roles"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}
	f.Name, f.Base, f.Roles = head.Name, head.Base, nil

	roles := &head.Roles
	if roles.Kind == yaml.AliasNode {
		roles = roles.Alias
	}
	switch {
	case roles.Kind == 0, roles.Kind == yaml.ScalarNode && roles.Tag == "!!null":
		return nil
	case roles.Kind != yaml.MappingNode:
		return errors.Newf(errors.ErrThemeParse, "line %d: roles must be a mapping", roles.Line)
	}

	f.Roles = make(map[string]StyleDef, len(roles.Content)/2)
	for i := 0; i+1 < len(roles.Content); i += 2 {
		key, val := roles.Content[i], roles.Content[i+1]
		var def StyleDef
		if err := val.Decode(&def); err != nil {
			return err
		}
		f.Roles[key.Value] = def
	}
	return nil
}

func (d StyleDef) spec() StyleSpec {
	return StyleSpec{
		Foreground: Color(d.Foreground),
		Background: Color(d.Background),
		Bold:       d.Bold,
		Intense:    d.Intense,
		Faint:      d.Faint,
		Italic:     d.Italic,
		Underline:  d.Underline,
	}
}

func defOf(s StyleSpec) StyleDef {
	return StyleDef{
		Foreground: string(s.Foreground),
		Background: string(s.Background),
		Bold:       s.Bold,
		Intense:    s.Intense,
		Faint:      s.Faint,
		Italic:     s.Italic,
		Underline:  s.Underline,
	}
}

// FormatForPath picks the theme format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// LoadFile reads a YAML or TOML theme file, choosing the decoder by extension.
func LoadFile(path string) (Theme, error) {
	logger := logging.GetLogger("theme")

	format, ok := FormatForPath(path)
	if !ok {
		return Theme{}, errors.Newf(errors.ErrThemeLoad, "unsupported theme file extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme file %s", path).
			WithDetail("path", path)
	}

	t, err := Parse(data, format)
	if err != nil {
		return Theme{}, err
	}
	if t.name == "" {
		t.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger.Debug().Str("path", path).Str("theme", t.name).Msg("Theme loaded")
	return t, nil
}

// Parse decodes theme data in the given format.
func Parse(data []byte, format Format) (Theme, error) {
	var f File
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return Theme{}, errors.Newf(errors.ErrThemeParse, "unknown theme format %q", format)
	}
	if err != nil {
		return Theme{}, errors.Wrapf(err, errors.ErrThemeParse, "failed to parse %s theme", format)
	}
	return f.Theme()
}

// Theme converts the file form into a Theme, validating role names and colors.
func (f File) Theme() (Theme, error) {
	base := Default()
	if f.Base != "" {
		b, ok := Named(f.Base)
		if !ok {
			return Theme{}, errors.Newf(errors.ErrThemeInvalid, "unknown base theme %q", f.Base).
				WithDetail("base", f.Base)
		}
		base = b
	}

	// Sorted so the first reported error is stable.
	names := make([]string, 0, len(f.Roles))
	for name := range f.Roles {
		names = append(names, name)
	}
	sort.Strings(names)

	t := base.WithName(f.Name)
	for _, name := range names {
		role, err := ParseRole(name)
		if err != nil {
			return Theme{}, errors.Wrap(err, errors.ErrThemeInvalid, "invalid theme").
				WithDetail("role", name)
		}
		spec := f.Roles[name].spec()
		if err := spec.Validate(); err != nil {
			return Theme{}, errors.Wrapf(err, errors.ErrThemeInvalid, "invalid style for role %s", name).
				WithDetail("role", name)
		}
		t = t.WithRole(role, spec)
	}
	return t, nil
}

// ToFile converts a theme into its on-disk form. Every role is listed.
func ToFile(t Theme) File {
	f := File{Name: t.name, Base: "plain", Roles: make(map[string]StyleDef, roleCount)}
	for _, role := range AllRoles() {
		f.Roles[role.String()] = defOf(t.StyleFor(role))
	}
	return f
}

// Resolve returns the built-in theme called nameOrPath, or loads it as a file.
func Resolve(nameOrPath string) (Theme, error) {
	if nameOrPath == "" {
		return Default(), nil
	}
	if t, ok := Named(nameOrPath); ok {
		return t, nil
	}
	if _, ok := FormatForPath(nameOrPath); ok {
		return LoadFile(nameOrPath)
	}
	return Theme{}, errors.Newf(errors.ErrThemeInvalid, "unknown theme %q", nameOrPath).
		WithDetail("available", Names())
}
