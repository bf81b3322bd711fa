package sink

import (
	"io"

	"github.com/arthur-debert/jsontint/pkg/theme"
)

//go:generate mockgen -source=sink.go -destination=./mocks/mock_sink.go -package=mocks

// Sink is a byte stream that can also switch text styles.
//
// SetStyle applies to every byte written until the next ResetStyle. Callers
// always pair the two, so an implementation may assume a style never spans
// more than one token.
type Sink interface {
	io.Writer
	SetStyle(style theme.StyleSpec) error
	ResetStyle() error
	// SupportsColor reports whether styles have any visible effect. When it
	// is false callers should not issue style calls at all.
	SupportsColor() bool
}

// Writer is a Sink over a plain io.Writer. It never supports color and
// ignores style calls.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *Writer) SetStyle(theme.StyleSpec) error { return nil }

func (s *Writer) ResetStyle() error { return nil }

func (s *Writer) SupportsColor() bool { return false }

// Markup is a Sink that makes styles visible as text: every styled token is
// wrapped in <spec>...</>, e.g. <blue+intense>"name"</>. Zero styles are
// written as <none>. Useful for debugging themes and for readable fixtures.
type Markup struct {
	w io.Writer
}

// NewMarkup wraps w.
func NewMarkup(w io.Writer) *Markup {
	return &Markup{w: w}
}

func (s *Markup) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *Markup) SetStyle(style theme.StyleSpec) error {
	_, err := io.WriteString(s.w, "<"+style.String()+">")
	return err
}

func (s *Markup) ResetStyle() error {
	_, err := io.WriteString(s.w, "</>")
	return err
}

func (s *Markup) SupportsColor() bool { return true }
