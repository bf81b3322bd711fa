package theme

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/jsontint/pkg/errors"
)

// Color names a terminal color. Accepted forms:
//
//   - one of the sixteen ANSI names: "black", "red", ..., "white" and
//     their "bright-" variants ("gray"/"grey" alias "bright-black")
//   - an ANSI-256 palette index: "0" through "255"
//   - a hex triplet: "#rgb" or "#rrggbb"
//
// The empty Color means "leave the terminal default".
type Color string

var ansiNames = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ANSIIndex returns the palette index for named and numeric colors.
// Hex colors and the empty color report false.
func (c Color) ANSIIndex() (int, bool) {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if s == "" || strings.HasPrefix(s, "#") {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return 0, false
		}
		return n, true
	}
	if s == "gray" || s == "grey" {
		return 8, true
	}
	for _, prefix := range []string{"bright-", "bright_", "bright"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			if idx, ok := ansiNames[rest]; ok {
				return idx + 8, true
			}
			return 0, false
		}
	}
	idx, ok := ansiNames[s]
	return idx, ok
}

// IsHex reports whether the color is a hex triplet.
func (c Color) IsHex() bool {
	return strings.HasPrefix(strings.TrimSpace(string(c)), "#")
}

// Validate reports malformed colors.
func (c Color) Validate() error {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return nil
	}
	if c.IsHex() {
		hex := s[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return errors.Newf(errors.ErrThemeInvalid, "invalid hex color %q", s).WithDetail("color", s)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return errors.Newf(errors.ErrThemeInvalid, "invalid hex color %q", s).WithDetail("color", s)
		}
		return nil
	}
	if _, ok := c.ANSIIndex(); !ok {
		return errors.Newf(errors.ErrThemeInvalid, "unknown color %q", s).WithDetail("color", s)
	}
	return nil
}

// Spec returns the form terminal libraries accept: the palette index as a
// decimal string for ANSI colors, the hex triplet otherwise.
func (c Color) Spec() string {
	if idx, ok := c.ANSIIndex(); ok {
		return strconv.Itoa(idx)
	}
	return strings.ToLower(strings.TrimSpace(string(c)))
}
