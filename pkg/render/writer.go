package render

import (
	"bytes"
	"io"

	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/sink"
	"github.com/arthur-debert/jsontint/pkg/theme"
	"github.com/arthur-debert/jsontint/pkg/value"
	"github.com/muesli/termenv"
)

// ToWriter renders v pretty-printed with the default theme.
func ToWriter(s sink.Sink, v value.Value) error {
	return Render(v, theme.Default(), s, DefaultOptions())
}

// ToWriterCompact renders v without whitespace using the default theme.
func ToWriterCompact(s sink.Sink, v value.Value) error {
	return Render(v, theme.Default(), s, CompactOptions())
}

// ToWriterWithTheme renders v pretty-printed with th.
func ToWriterWithTheme(s sink.Sink, v value.Value, th theme.Theme) error {
	return Render(v, th, s, DefaultOptions())
}

// Renderer binds a theme and options so they can be reused across many
// documents. A Renderer holds no per-document state and is safe for
// concurrent use as long as each call gets its own sink.
type Renderer struct {
	theme theme.Theme
	opts  Options
}

// New returns a Renderer.
func New(th theme.Theme, opts Options) *Renderer {
	return &Renderer{theme: th, opts: opts}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() theme.Theme { return r.theme }

// Options returns the renderer's options.
func (r *Renderer) Options() Options { return r.opts }

// Render writes v to s.
func (r *Renderer) Render(s sink.Sink, v value.Value) error {
	return Render(v, r.theme, s, r.opts)
}

// RenderAny converts x with value.FromGo and writes it to s.
func (r *Renderer) RenderAny(s sink.Sink, x any) error {
	v, err := value.FromGo(x)
	if err != nil {
		return err
	}
	return Render(v, r.theme, s, r.opts)
}

// RenderStream renders every document read from in, one after another,
// each followed by a line feed.
func (r *Renderer) RenderStream(s sink.Sink, in io.Reader) error {
	opts := r.opts
	opts.Newline = true

	dec := value.NewDecoder(in)
	for {
		v, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := Render(v, r.theme, s, opts); err != nil {
			return err
		}
	}
}

// Marshal renders x as plain JSON.
func Marshal(x any, opts Options) ([]byte, error) {
	v, err := value.FromGo(x)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Render(v, theme.Plain(), sink.NewWriter(&buf), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalColor renders x with th as ANSI-colored JSON for profile. The
// Ascii profile yields plain JSON.
func MarshalColor(x any, th theme.Theme, profile termenv.Profile, opts Options) ([]byte, error) {
	v, err := value.FromGo(x)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Render(v, th, sink.NewTerm(&buf, profile), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent renders x as plain JSON indented by indent spaces.
func MarshalIndent(x any, indent int) ([]byte, error) {
	if indent < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "indent must not be negative, got %d", indent)
	}
	return Marshal(x, Options{Indent: indent})
}
