package sink

import (
	"io"

	"github.com/arthur-debert/jsontint/pkg/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Lipgloss draws styled tokens with lipgloss styles. Each Write made while a
// style is active is rendered as one styled run.
type Lipgloss struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	style    lipgloss.Style
	styled   bool
}

// NewLipgloss returns a Lipgloss sink writing to w. A nil renderer means
// one detected from w.
func NewLipgloss(w io.Writer, r *lipgloss.Renderer) *Lipgloss {
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}
	return &Lipgloss{w: w, renderer: r}
}

// Style converts a StyleSpec into a lipgloss style bound to r.
func Style(r *lipgloss.Renderer, spec theme.StyleSpec) lipgloss.Style {
	st := r.NewStyle()
	if fg := spec.ResolvedForeground(); fg != "" {
		st = st.Foreground(lipgloss.Color(fg.Spec()))
	}
	if spec.Background != "" {
		st = st.Background(lipgloss.Color(spec.Background.Spec()))
	}
	if spec.Bold {
		st = st.Bold(true)
	}
	if spec.Faint {
		st = st.Faint(true)
	}
	if spec.Italic {
		st = st.Italic(true)
	}
	if spec.Underline {
		st = st.Underline(true)
	}
	return st
}

func (l *Lipgloss) Write(p []byte) (int, error) {
	if !l.styled {
		return l.w.Write(p)
	}
	if _, err := io.WriteString(l.w, l.style.Render(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (l *Lipgloss) SetStyle(spec theme.StyleSpec) error {
	if spec.IsZero() {
		l.styled = false
		return nil
	}
	l.style = Style(l.renderer, spec)
	l.styled = true
	return nil
}

func (l *Lipgloss) ResetStyle() error {
	l.styled = false
	return nil
}

func (l *Lipgloss) SupportsColor() bool {
	return l.renderer.ColorProfile() != termenv.Ascii
}
