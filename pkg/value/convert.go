package value

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/arthur-debert/jsontint/pkg/errors"
)

// FromGo converts a Go value into a Value.
//
// Scalars, json.Number, []any and map[string]any are converted directly;
// map keys are sorted, as encoding/json does. Anything else goes through
// encoding/json marshalling, which keeps struct field order.
func FromGo(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Value:
		if t == nil {
			return Null(), nil
		}
		return *t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Uint(uint64(t)), nil
	case uint8:
		return Uint(uint64(t)), nil
	case uint16:
		return Uint(uint64(t)), nil
	case uint32:
		return Uint(uint64(t)), nil
	case uint64:
		return Uint(t), nil
	case float32:
		return Number(formatFloat(float64(t), 32)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case []Value:
		return Array(t...), nil
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			v, err := FromGo(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Value{kind: KindArray, items: items}, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, k := range keys {
			v, err := FromGo(t[k])
			if err != nil {
				return Value{}, err
			}
			members[i] = Member{Key: k, Value: v}
		}
		return Value{kind: KindObject, members: members}, nil
	case json.RawMessage:
		return Decode(bytes.NewReader(t))
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return Value{}, errors.Wrapf(err, errors.ErrInvalidInput, "cannot convert %T", x)
		}
		return Decode(bytes.NewReader(data))
	}
}

