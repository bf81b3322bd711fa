package render

import (
	"io"
	"strconv"

	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/sink"
	"github.com/arthur-debert/jsontint/pkg/theme"
	"github.com/arthur-debert/jsontint/pkg/value"
)

var (
	litNull  = []byte("null")
	litTrue  = []byte("true")
	litFalse = []byte("false")

	punctOpenArray   = []byte("[")
	punctCloseArray  = []byte("]")
	punctEmptyArray  = []byte("[]")
	punctOpenObject  = []byte("{")
	punctCloseObject = []byte("}")
	punctEmptyObject = []byte("{}")
	punctColon       = []byte(":")
	punctComma       = []byte(",")
	space            = []byte(" ")
)

// Render writes v to s as JSON, styling each token with th.
//
// When s does not support color the output is plain JSON and no style calls
// are made. Otherwise every key and leaf is bracketed by SetStyle and
// ResetStyle with the role's style, and punctuation is styled only when the
// theme gives it a style.
//
// Numbers that are not valid JSON literals fail with ErrUnsupportedNumber
// before anything is written for them. Sink failures are returned as ErrIO;
// output written before a failure is not retracted.
func Render(v value.Value, th theme.Theme, s sink.Sink, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	var e *encoder
	if !s.SupportsColor() {
		e = newPlainEncoder(s, opts)
	} else {
		e = newStyledEncoder(s, th, opts)
	}

	if err := e.value(v, 0); err != nil {
		return err
	}
	if opts.Newline {
		return e.write([]byte{'\n'})
	}
	return nil
}

// encoder walks a value tree. The plain and styled paths share the layout
// code and differ only in whether tokens are bracketed by style calls.
type encoder struct {
	w      io.Writer
	sink   sink.Sink
	styled bool
	styles map[theme.Role]theme.StyleSpec
	punct  bool
	opts   Options

	buf []byte
	nl  []byte
}

func newPlainEncoder(w io.Writer, opts Options) *encoder {
	return &encoder{w: w, opts: opts, nl: []byte{'\n'}}
}

func newStyledEncoder(s sink.Sink, th theme.Theme, opts Options) *encoder {
	e := &encoder{w: s, sink: s, styled: true, opts: opts, nl: []byte{'\n'}}
	e.styles = make(map[theme.Role]theme.StyleSpec, len(theme.AllRoles()))
	for _, role := range theme.AllRoles() {
		e.styles[role] = th.StyleFor(role)
	}
	e.punct = !th.StyleFor(theme.RolePunctuation).IsZero()
	return e
}

func (e *encoder) write(p []byte) error {
	n, err := e.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write output")
	}
	return nil
}

// token writes one styled run.
func (e *encoder) token(role theme.Role, text []byte) error {
	if !e.styled {
		return e.write(text)
	}
	if err := e.sink.SetStyle(e.styles[role]); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to set style").
			WithDetail("role", role.String())
	}
	if err := e.write(text); err != nil {
		return err
	}
	if err := e.sink.ResetStyle(); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to reset style").
			WithDetail("role", role.String())
	}
	return nil
}

func (e *encoder) punctuation(text []byte) error {
	if e.punct {
		return e.token(theme.RolePunctuation, text)
	}
	return e.write(text)
}

// newline starts a new line indented for level. Compact output has none.
func (e *encoder) newline(level int) error {
	if e.opts.Compact {
		return nil
	}
	n := 1 + level*e.opts.Indent
	for len(e.nl) < n {
		e.nl = append(e.nl, ' ')
	}
	return e.write(e.nl[:n])
}

// separator follows a comma or colon. Pretty output always has a space after
// a colon; compact output only with CompactSpacing.
func (e *encoder) separator(afterColon bool) error {
	if e.opts.Compact {
		if e.opts.CompactSpacing {
			return e.write(space)
		}
		return nil
	}
	if afterColon {
		return e.write(space)
	}
	return nil
}

func (e *encoder) value(v value.Value, depth int) error {
	switch v.Kind() {
	case value.KindNull:
		return e.token(theme.RoleNull, litNull)
	case value.KindBool:
		if v.AsBool() {
			return e.token(theme.RoleBool, litTrue)
		}
		return e.token(theme.RoleBool, litFalse)
	case value.KindNumber:
		text := v.NumberText()
		if !validNumber(text) {
			return errors.Newf(errors.ErrUnsupportedNumber, "number %q cannot be represented in JSON", text).
				WithDetails(map[string]interface{}{"number": text, "path": ""})
		}
		e.buf = append(e.buf[:0], text...)
		return e.token(theme.RoleNumber, e.buf)
	case value.KindString:
		e.buf = appendQuoted(e.buf[:0], v.Str())
		return e.token(theme.RoleString, e.buf)
	case value.KindArray:
		return e.array(v, depth)
	case value.KindObject:
		return e.object(v, depth)
	}
	return errors.Newf(errors.ErrInternal, "unknown value kind %d", int(v.Kind()))
}

func (e *encoder) enter(depth int) error {
	if e.opts.MaxDepth > 0 && depth >= e.opts.MaxDepth {
		return errors.Newf(errors.ErrDepthExceeded, "nesting exceeds maximum depth %d", e.opts.MaxDepth).
			WithDetail("depth", e.opts.MaxDepth)
	}
	return nil
}

func (e *encoder) array(v value.Value, depth int) error {
	if err := e.enter(depth); err != nil {
		return err
	}
	n := v.Len()
	if n == 0 {
		return e.punctuation(punctEmptyArray)
	}

	if err := e.punctuation(punctOpenArray); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		item := v.At(i)
		if i > 0 {
			if err := e.punctuation(punctComma); err != nil {
				return err
			}
			if err := e.separator(false); err != nil {
				return err
			}
		}
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		if err := e.value(item, depth+1); err != nil {
			return withPathSegment(err, strconv.Itoa(i))
		}
	}
	if err := e.newline(depth); err != nil {
		return err
	}
	return e.punctuation(punctCloseArray)
}

func (e *encoder) object(v value.Value, depth int) error {
	if err := e.enter(depth); err != nil {
		return err
	}
	n := v.Len()
	if n == 0 {
		return e.punctuation(punctEmptyObject)
	}

	if err := e.punctuation(punctOpenObject); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		m := v.MemberAt(i)
		if i > 0 {
			if err := e.punctuation(punctComma); err != nil {
				return err
			}
			if err := e.separator(false); err != nil {
				return err
			}
		}
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		e.buf = appendQuoted(e.buf[:0], m.Key)
		if err := e.token(theme.RoleObjectKey, e.buf); err != nil {
			return err
		}
		if err := e.punctuation(punctColon); err != nil {
			return err
		}
		if err := e.separator(true); err != nil {
			return err
		}
		if err := e.value(m.Value, depth+1); err != nil {
			return withPathSegment(err, m.Key)
		}
	}
	if err := e.newline(depth); err != nil {
		return err
	}
	return e.punctuation(punctCloseObject)
}

// withPathSegment prepends seg to the JSON pointer of an unsupported number
// error as it unwinds.
func withPathSegment(err error, seg string) error {
	if !errors.IsErrorCode(err, errors.ErrUnsupportedNumber) {
		return err
	}
	details := errors.GetErrorDetails(err)
	if details == nil {
		return err
	}
	path, _ := details["path"].(string)
	details["path"] = "/" + escapePointerToken(seg) + path
	return err
}
