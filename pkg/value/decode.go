package value

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/arthur-debert/jsontint/pkg/errors"
)

// Decoder reads a stream of JSON values, keeping member order and number
// literals exactly as written.
type Decoder struct {
	dec *json.Decoder
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Decoder{dec: dec}
}

// Next decodes the next top-level value. It returns io.EOF once the input
// is exhausted between values.
func (d *Decoder) Next() (Value, error) {
	tok, err := d.dec.Token()
	if err == io.EOF {
		return Value{}, io.EOF
	}
	if err != nil {
		return Value{}, d.syntaxErr(err)
	}
	return d.value(tok)
}

// InputOffset returns the byte offset of the decoder in the input.
func (d *Decoder) InputOffset() int64 {
	return d.dec.InputOffset()
}

func (d *Decoder) token() (json.Token, error) {
	tok, err := d.dec.Token()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, d.syntaxErr(err)
	}
	return tok, nil
}

func (d *Decoder) value(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return d.array()
		case '{':
			return d.object()
		}
	}
	return Value{}, errors.Newf(errors.ErrInvalidInput, "unexpected token %v", tok).
		WithDetail("offset", d.dec.InputOffset())
}

func (d *Decoder) array() (Value, error) {
	items := []Value{}
	for d.dec.More() {
		tok, err := d.token()
		if err != nil {
			return Value{}, err
		}
		v, err := d.value(tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	if _, err := d.token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindArray, items: items}, nil
}

func (d *Decoder) object() (Value, error) {
	members := []Member{}
	for d.dec.More() {
		tok, err := d.token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, errors.Newf(errors.ErrInvalidInput, "object key must be a string, got %v", tok).
				WithDetail("offset", d.dec.InputOffset())
		}
		tok, err = d.token()
		if err != nil {
			return Value{}, err
		}
		v, err := d.value(tok)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: v})
	}
	if _, err := d.token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindObject, members: members}, nil
}

func (d *Decoder) syntaxErr(err error) error {
	return errors.Wrap(err, errors.ErrInvalidInput, "invalid JSON input").
		WithDetail("offset", d.dec.InputOffset())
}

// Decode reads exactly one JSON value from r.
func Decode(r io.Reader) (Value, error) {
	d := NewDecoder(r)
	v, err := d.Next()
	if err == io.EOF {
		return Value{}, errors.Wrap(io.ErrUnexpectedEOF, errors.ErrInvalidInput, "empty JSON input")
	}
	if err != nil {
		return Value{}, err
	}
	if _, err := d.dec.Token(); err != io.EOF {
		return Value{}, errors.New(errors.ErrInvalidInput, "unexpected data after top-level value").
			WithDetail("offset", d.dec.InputOffset())
	}
	return v, nil
}

// DecodeAll reads every top-level value from r.
func DecodeAll(r io.Reader) ([]Value, error) {
	d := NewDecoder(r)
	var values []Value
	for {
		v, err := d.Next()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
}

// Parse decodes a single JSON document held in a string.
func Parse(s string) (Value, error) {
	return Decode(strings.NewReader(s))
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
