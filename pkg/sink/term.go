package sink

import (
	"io"
	"strings"

	"github.com/arthur-debert/jsontint/pkg/theme"
	"github.com/muesli/termenv"
)

// Term writes ANSI SGR sequences through a termenv.Output. Colors are
// degraded to what the profile can show; the Ascii profile disables color.
//
// A Term caches resolved sequences and is not safe for concurrent use.
type Term struct {
	out     *termenv.Output
	profile termenv.Profile
	active  bool
	seqs    map[theme.StyleSpec]string
}

// NewTerm returns a Term writing to w with a fixed color profile.
func NewTerm(w io.Writer, profile termenv.Profile) *Term {
	return &Term{
		out:     termenv.NewOutput(w, termenv.WithProfile(profile)),
		profile: profile,
		seqs:    make(map[theme.StyleSpec]string),
	}
}

// Profile returns the color profile sequences are produced for.
func (t *Term) Profile() termenv.Profile {
	return t.profile
}

func (t *Term) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// SetStyle starts style. A style that resolves to nothing for the profile
// writes nothing, and the matching ResetStyle is then a no-op as well.
func (t *Term) SetStyle(style theme.StyleSpec) error {
	seq := t.sequence(style)
	if seq == "" {
		t.active = false
		return nil
	}
	if _, err := io.WriteString(t.out, termenv.CSI+seq+"m"); err != nil {
		return err
	}
	t.active = true
	return nil
}

func (t *Term) ResetStyle() error {
	if !t.active {
		return nil
	}
	t.active = false
	_, err := io.WriteString(t.out, termenv.CSI+termenv.ResetSeq+"m")
	return err
}

func (t *Term) SupportsColor() bool {
	return t.profile != termenv.Ascii
}

func (t *Term) sequence(style theme.StyleSpec) string {
	if style.IsZero() || t.profile == termenv.Ascii {
		return ""
	}
	if seq, ok := t.seqs[style]; ok {
		return seq
	}
	seq := Sequence(t.profile, style)
	t.seqs[style] = seq
	return seq
}

// Sequence returns the SGR parameters (without CSI and the final "m") that
// draw style under profile.
func Sequence(profile termenv.Profile, style theme.StyleSpec) string {
	var parts []string
	if style.Bold {
		parts = append(parts, termenv.BoldSeq)
	}
	if style.Faint {
		parts = append(parts, termenv.FaintSeq)
	}
	if style.Italic {
		parts = append(parts, termenv.ItalicSeq)
	}
	if style.Underline {
		parts = append(parts, termenv.UnderlineSeq)
	}
	if fg := style.ResolvedForeground(); fg != "" {
		if c := profile.Color(fg.Spec()); c != nil {
			if seq := c.Sequence(false); seq != "" {
				parts = append(parts, seq)
			}
		}
	}
	if bg := style.Background; bg != "" {
		if c := profile.Color(bg.Spec()); c != nil {
			if seq := c.Sequence(true); seq != "" {
				parts = append(parts, seq)
			}
		}
	}
	return strings.Join(parts, ";")
}
