package sink

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode decides whether output is colored.
type ColorMode int

const (
	// ColorAuto colors only when the destination is a color terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colors regardless of the destination.
	ColorAlways
	// ColorNever never colors.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "force":
		return ColorAlways, nil
	case "never", "none", "off":
		return ColorNever, nil
	default:
		return ColorAuto, errors.Newf(errors.ErrConfigInvalid, "invalid color mode: %s (valid: auto, always, never)", s).
			WithDetail("color", s)
	}
}

// Kind selects a Sink implementation.
type Kind string

const (
	KindTerm     Kind = "term"
	KindLipgloss Kind = "lipgloss"
	KindMarkup   Kind = "markup"
	KindPlain    Kind = "plain"
)

// Kinds lists every sink kind.
func Kinds() []Kind {
	return []Kind{KindTerm, KindLipgloss, KindMarkup, KindPlain}
}

// ParseKind parses a sink kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindTerm, nil
	}
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Newf(errors.ErrConfigInvalid, "invalid sink: %s (valid: term, lipgloss, markup, plain)", s).
		WithDetail("sink", s)
}

// Detect reports whether f is a terminal that can show color. A non-empty
// NO_COLOR always wins.
func Detect(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// ShouldColor resolves mode against the destination w.
func ShouldColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f, ok := w.(*os.File); ok {
		return Detect(f)
	}
	return false
}

// New builds the sink of the given kind for w. When color is off the result
// is a plain Writer, except for the markup kind which always marks styles.
func New(w io.Writer, mode ColorMode, kind Kind) Sink {
	logger := logging.GetLogger("sink")

	color := ShouldColor(w, mode)
	logger.Debug().
		Str("mode", mode.String()).
		Str("kind", string(kind)).
		Bool("color", color).
		Msg("Selecting sink")

	if kind == KindMarkup {
		return NewMarkup(w)
	}
	if !color || kind == KindPlain {
		return NewWriter(w)
	}

	profile := profileFor(w)
	if kind == KindLipgloss {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(profile)
		return NewLipgloss(w, r)
	}
	return NewTerm(w, profile)
}

// profileFor detects the richest profile w supports, falling back to the
// sixteen ANSI colors when detection finds none.
func profileFor(w io.Writer) termenv.Profile {
	p := termenv.NewOutput(w).EnvColorProfile()
	if p == termenv.Ascii {
		return termenv.ANSI
	}
	return p
}
