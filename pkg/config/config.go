package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/logging"
	"github.com/arthur-debert/jsontint/pkg/render"
	"github.com/arthur-debert/jsontint/pkg/sink"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "JSONTINT_"

// Config is the effective configuration.
type Config struct {
	Color  string       `koanf:"color"`
	Sink   string       `koanf:"sink"`
	Theme  string       `koanf:"theme"`
	Render RenderConfig `koanf:"render"`

	// Path is the config file that was loaded, if any.
	Path string `koanf:"-"`
}

// RenderConfig holds layout settings.
type RenderConfig struct {
	Indent   int  `koanf:"indent"`
	Compact  bool `koanf:"compact"`
	Spacing  bool `koanf:"spacing"`
	MaxDepth int  `koanf:"max_depth"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load reads configuration from the default file location.
func Load(overrides map[string]interface{}) (*Config, error) {
	return LoadFrom(Path(), overrides)
}

// LoadFrom reads configuration using path as the config file. A missing
// file is not an error. Overrides are keyed by dotted path, e.g.
// "render.indent".
func LoadFrom(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	loaded := ""
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			parser, perr := parserFor(path)
			if perr != nil {
				return nil, perr
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			loaded = path
			logger.Debug().Str("path", path).Msg("Loaded config file")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}
	cfg.Path = loaded

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("color", cfg.Color).
		Str("sink", cfg.Sink).
		Str("theme", cfg.Theme).
		Int("indent", cfg.Render.Indent).
		Bool("compact", cfg.Render.Compact).
		Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps JSONTINT_RENDER_MAX_DEPTH to render.max_depth. Only the first
// underscore separates a section from its key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if section, rest, ok := strings.Cut(key, "_"); ok && section == "render" {
		return section + "." + rest
	}
	return key
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Dir returns the jsontint config directory under XDG_CONFIG_HOME.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = xdg.ConfigHome
	}
	return filepath.Join(base, logging.AppName)
}

// Path returns the config file to load: $JSONTINT_CONFIG when set, otherwise
// the first of config.toml, config.yaml and config.yml found in Dir.
func Path() string {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	dir := Dir()
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, "config.toml")
}

// Validate rejects settings the renderer cannot honor.
func (c *Config) Validate() error {
	if _, err := sink.ParseColorMode(c.Color); err != nil {
		return err
	}
	if _, err := sink.ParseKind(c.Sink); err != nil {
		return err
	}
	if c.Render.Indent < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "render.indent must not be negative, got %d", c.Render.Indent).
			WithDetail("indent", c.Render.Indent)
	}
	if c.Render.MaxDepth < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "render.max_depth must not be negative, got %d", c.Render.MaxDepth).
			WithDetail("max_depth", c.Render.MaxDepth)
	}
	return nil
}

// RenderOptions converts the layout settings.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Indent:         c.Render.Indent,
		Compact:        c.Render.Compact,
		CompactSpacing: c.Render.Spacing,
		MaxDepth:       c.Render.MaxDepth,
		Newline:        true,
	}
}

// ColorMode returns the parsed color setting. Validate has already
// rejected bad values, so parse errors fall back to auto.
func (c *Config) ColorMode() sink.ColorMode {
	m, _ := sink.ParseColorMode(c.Color)
	return m
}

// SinkKind returns the parsed sink setting, falling back to term.
func (c *Config) SinkKind() sink.Kind {
	k, err := sink.ParseKind(c.Sink)
	if err != nil {
		return sink.KindTerm
	}
	return k
}

// DefaultsContent returns the embedded defaults file.
func DefaultsContent() string {
	return string(defaultConfig)
}
