// pkg/value/value_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test value construction, accessors, Go conversion and decoding

package value_test

import (
	"encoding/json"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, value.KindNull, value.Null().Kind())
	assert.True(t, value.Value{}.IsNull())

	assert.True(t, value.Bool(true).AsBool())
	assert.Equal(t, value.KindBool, value.Bool(false).Kind())

	assert.Equal(t, "1.50", value.Number("1.50").NumberText())
	assert.Equal(t, "-42", value.Int(-42).NumberText())
	assert.Equal(t, "18446744073709551615", value.Uint(math.MaxUint64).NumberText())

	assert.Equal(t, "hi", value.String("hi").Str())
	assert.Equal(t, "", value.String("hi").NumberText())
	assert.Equal(t, "", value.Number("1").Str())

	arr := value.Array(value.Int(1), value.Null())
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, value.KindArray, arr.Kind())

	obj := value.Object(value.M("b", value.Int(1)), value.M("a", value.Int(2)))
	assert.Equal(t, []string{"b", "a"}, obj.Keys())
	got, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, "2", got.NumberText())
	_, ok = obj.Get("z")
	assert.False(t, ok)
	assert.Equal(t, 0, value.String("x").Len())
}

func TestArrayCopiesInput(t *testing.T) {
	items := []value.Value{value.Int(1)}
	arr := value.Array(items...)
	items[0] = value.Int(2)
	assert.Equal(t, "1", arr.Items()[0].NumberText())
}

func TestAccessorsReturnCopies(t *testing.T) {
	arr := value.Array(value.Int(1), value.Int(2))
	items := arr.Items()
	items[0] = value.String("changed")
	assert.Equal(t, "1", arr.At(0).NumberText())

	obj := value.Object(value.M("a", value.Int(1)))
	members := obj.Members()
	members[0] = value.M("b", value.Null())
	assert.Equal(t, "a", obj.MemberAt(0).Key)
	assert.Equal(t, "1", obj.MemberAt(0).Value.NumberText())

	assert.Nil(t, value.String("x").Items())
	assert.Nil(t, value.Object().Members())
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{1e21, "1e+21"},
		{1e20, "100000000000000000000"},
		{1e-7, "1e-7"},
		{0.000001, "0.000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, value.Float(tt.in).NumberText())
		})
	}

	// Finite values format exactly like encoding/json.
	for _, f := range []float64{3.14159, 1e-7, 123456789.125, 2.5e30} {
		want, err := json.Marshal(f)
		require.NoError(t, err)
		assert.Equal(t, string(want), value.Float(f).NumberText())
	}
}

func TestEqual(t *testing.T) {
	a := value.MustParse(`{"x":[1,2,{"y":null}],"z":"s"}`)
	b := value.MustParse(`{"x":[1,2,{"y":null}],"z":"s"}`)
	assert.True(t, a.Equal(b))

	reordered := value.MustParse(`{"z":"s","x":[1,2,{"y":null}]}`)
	assert.False(t, a.Equal(reordered), "member order is significant")

	assert.False(t, value.Number("1.0").Equal(value.Number("1")))
	assert.False(t, value.Null().Equal(value.Bool(false)))
	assert.True(t, value.Bool(true).Equal(value.Bool(true)))
}

type point struct {
	Y int    `json:"y"`
	X int    `json:"x"`
	L string `json:"label,omitempty"`
}

func TestFromGo(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want value.Value
	}{
		{"nil", nil, value.Null()},
		{"bool", true, value.Bool(true)},
		{"int", 7, value.Int(7)},
		{"int8", int8(-3), value.Int(-3)},
		{"uint16", uint16(9), value.Uint(9)},
		{"float32", float32(0.1), value.Number("0.1")},
		{"float64", 2.5, value.Number("2.5")},
		{"json.Number", json.Number("1.000"), value.Number("1.000")},
		{"string", "s", value.String("s")},
		{"slice", []any{1, "a", nil}, value.Array(value.Int(1), value.String("a"), value.Null())},
		{
			"map sorts keys",
			map[string]any{"b": 1, "a": 2},
			value.Object(value.M("a", value.Int(2)), value.M("b", value.Int(1))),
		},
		{
			"struct keeps field order",
			point{Y: 1, X: 2},
			value.Object(value.M("y", value.Int(1)), value.M("x", value.Int(2))),
		},
		{"raw message", json.RawMessage(`{"k":[]}`), value.Object(value.M("k", value.Array()))},
		{"value passthrough", value.String("v"), value.String("v")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := value.FromGo(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %#v, got %#v", tt.want, got)
		})
	}

	var nilPtr *value.Value
	got, err := value.FromGo(nilPtr)
	require.NoError(t, err)
	assert.True(t, got.IsNull())

	_, err = value.FromGo(make(chan int))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	nan, err := value.FromGo(math.NaN())
	require.NoError(t, err, "non-finite floats convert; rendering rejects them")
	assert.Equal(t, "NaN", nan.NumberText())
}

func TestParsePreservesOrderAndNumbers(t *testing.T) {
	v, err := value.Parse(`{"zeta": 1.50, "alpha": -0e+3, "mid": {"b": [], "a": {}}}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, v.Keys())
	zeta, _ := v.Get("zeta")
	assert.Equal(t, "1.50", zeta.NumberText())
	alpha, _ := v.Get("alpha")
	assert.Equal(t, "-0e+3", alpha.NumberText())
	mid, _ := v.Get("mid")
	assert.Equal(t, []string{"b", "a"}, mid.Keys())
}

func TestParseDuplicateKeys(t *testing.T) {
	v, err := value.Parse(`{"a":1,"a":2}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, v.Keys())
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		``,
		`{"a":`,
		`[1,2`,
		`{"a" 1}`,
		`[1] [2]`,
		`tru`,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := value.Parse(in)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestDecoderStream(t *testing.T) {
	dec := value.NewDecoder(strings.NewReader("{\"a\":1}\n[true]\n\"s\" null\n"))

	var kinds []value.Kind
	for {
		v, err := dec.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		kinds = append(kinds, v.Kind())
	}
	assert.Equal(t, []value.Kind{value.KindObject, value.KindArray, value.KindString, value.KindNull}, kinds)
	assert.Positive(t, dec.InputOffset())
}

func TestDecodeAll(t *testing.T) {
	values, err := value.DecodeAll(strings.NewReader(`1 2 3`))
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, "3", values[2].NumberText())

	values, err = value.DecodeAll(strings.NewReader(`1 {`))
	require.Error(t, err)
	assert.Len(t, values, 1)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", value.KindObject.String())
	assert.Equal(t, "unknown", value.Kind(99).String())
}
