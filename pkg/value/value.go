package value

import (
	"math"
	"strconv"
)

// Kind is the variant tag of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON-like tree node. The zero Value is null.
//
// Numbers keep the literal text they were built from, and objects keep
// their members in insertion order.
type Value struct {
	kind    Kind
	b       bool
	text    string
	items   []Value
	members []Member
}

// Member is one object entry.
type Member struct {
	Key   string
	Value Value
}

// M is shorthand for a Member literal.
func M(key string, v Value) Member {
	return Member{Key: key, Value: v}
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a number carrying text verbatim. The text is not checked
// here; the renderer rejects literals that are not valid JSON numbers.
func Number(text string) Value { return Value{kind: KindNumber, text: text} }

// Int returns a number from a signed integer.
func Int(i int64) Value { return Number(strconv.FormatInt(i, 10)) }

// Uint returns a number from an unsigned integer.
func Uint(u uint64) Value { return Number(strconv.FormatUint(u, 10)) }

// Float returns a number from a float64, formatted the way encoding/json
// formats it. NaN and infinities are kept as "NaN", "+Inf" and "-Inf" so
// that rendering can report them.
func Float(f float64) Value { return Number(formatFloat(f, 64)) }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array returns an array of items. The slice is copied.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value(nil), items...)}
}

// Object returns an object with members in the given order. The slice is copied.
func Object(members ...Member) Value {
	return Value{kind: KindObject, members: append([]Member(nil), members...)}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload; false for other kinds.
func (v Value) AsBool() bool { return v.b }

// NumberText returns the literal text of a number; empty for other kinds.
func (v Value) NumberText() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.text
}

// Str returns the string payload; empty for other kinds.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.text
}

// Items returns a copy of the elements of an array; nil for other kinds.
func (v Value) Items() []Value {
	if len(v.items) == 0 {
		return nil
	}
	return append([]Value(nil), v.items...)
}

// Members returns a copy of the entries of an object in order; nil for
// other kinds.
func (v Value) Members() []Member {
	if len(v.members) == 0 {
		return nil
	}
	return append([]Member(nil), v.members...)
}

// At returns the i-th array element. It panics when i is out of range.
func (v Value) At(i int) Value { return v.items[i] }

// MemberAt returns the i-th object member. It panics when i is out of range.
func (v Value) MemberAt(i int) Member { return v.members[i] }

// Len returns the number of elements or members; zero for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Get returns the first member named key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Keys returns object keys in order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Equal reports structural equality. Numbers compare by literal text.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber, KindString:
		return v.text == other.text
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != other.members[i].Key || !v.members[i].Value.Equal(other.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// formatFloat follows encoding/json: shortest representation, exponent
// form outside [1e-6, 1e21).
func formatFloat(f float64, bits int) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "+Inf"
	}
	if math.IsInf(f, -1) {
		return "-Inf"
	}

	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}
	b := strconv.AppendFloat(nil, f, fmt, -1, bits)
	if fmt == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}
