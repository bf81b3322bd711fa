package render

import "github.com/arthur-debert/jsontint/pkg/errors"

// Options controls layout. The zero value is pretty output with no
// indentation; use DefaultOptions for the usual two-space indent.
type Options struct {
	// Indent is the number of spaces per nesting level in pretty output.
	Indent int
	// Compact drops all layout whitespace.
	Compact bool
	// CompactSpacing adds one space after ':' and ',' in compact output.
	CompactSpacing bool
	// MaxDepth limits container nesting. Zero means no limit.
	MaxDepth int
	// Newline appends a line feed after the document.
	Newline bool
}

// DefaultOptions returns pretty output indented by two spaces.
func DefaultOptions() Options {
	return Options{Indent: 2}
}

// CompactOptions returns compact output with no spacing.
func CompactOptions() Options {
	return Options{Compact: true}
}

// Validate rejects negative sizes.
func (o Options) Validate() error {
	if o.Indent < 0 {
		return errors.Newf(errors.ErrInvalidInput, "indent must not be negative, got %d", o.Indent).
			WithDetail("indent", o.Indent)
	}
	if o.MaxDepth < 0 {
		return errors.Newf(errors.ErrInvalidInput, "max depth must not be negative, got %d", o.MaxDepth).
			WithDetail("max_depth", o.MaxDepth)
	}
	return nil
}
