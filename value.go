package geojson

import (
	"math"
	"math/big"
	"strings"

	"github.com/juju/errors"
)

// Kind identifies the JSON type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindBigInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindBigInt:
		return "bigint"
	case KindFloat:
		return "float"
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

// Value is an arbitrary JSON value, used for feature properties.
//
// Integers and floats are distinct kinds: a number written without a
// fraction or exponent decodes as KindInt, anything else as KindFloat, and
// the encoder keeps the distinction visible in its output. Integers outside
// the int64 range are KindBigInt and keep every digit.
//
// Strings are UTF-8. Invalid bytes are replaced with U+FFFD by the decoder
// and by the encoder alike, so only valid UTF-8 survives a round trip
// unchanged.
//
// The zero Value is null.
type Value struct {
	kind Kind

	b   bool
	i   int64
	f   float64
	s   string // string, or decimal digits for KindBigInt
	arr []Value
	obj map[string]Value
}

func Null() Value                  { return Value{} }
func Bool(b bool) Value            { return Value{kind: KindBool, b: b} }
func Int(n int64) Value            { return Value{kind: KindInt, i: n} }
func Float(f float64) Value        { return Value{kind: KindFloat, f: f} }
func Str(s string) Value           { return Value{kind: KindString, s: s} }
func Array(vs ...Value) Value      { return Value{kind: KindArray, arr: vs} }
func Map(m map[string]Value) Value { return Value{kind: KindObject, obj: m} }

// BigInt returns an integer Value of any size. Values that fit an int64 are
// KindInt; a nil n is null.
func BigInt(n *big.Int) Value {
	switch {
	case n == nil:
		return Null()
	case n.IsInt64():
		return Int(n.Int64())
	}
	return Value{kind: KindBigInt, s: n.String()}
}

// Kind returns the JSON type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) AsBool() (bool, bool)              { return v.b, v.kind == KindBool }
func (v Value) AsInt() (int64, bool)              { return v.i, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool)          { return v.f, v.kind == KindFloat }
func (v Value) AsBigInt() (*big.Int, bool)        { return v.bigInt() }
func (v Value) AsString() (string, bool)          { return v.s, v.kind == KindString }
func (v Value) Elems() ([]Value, bool)            { return v.arr, v.kind == KindArray }
func (v Value) Members() (map[string]Value, bool) { return v.obj, v.kind == KindObject }

// bigInt returns integer kinds as a big.Int.
func (v Value) bigInt() (*big.Int, bool) {
	switch v.kind {
	case KindInt:
		return big.NewInt(v.i), true
	case KindBigInt:
		n, ok := new(big.Int).SetString(v.s, 10)
		return n, ok
	}
	return nil, false
}

// Interface converts v to the native representation used by encoding/json:
// nil, bool, int64, *big.Int, float64, string, []interface{} or
// map[string]interface{}.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindBigInt:
		n, _ := v.bigInt()
		return n
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]interface{}, len(v.arr))
		for i := range v.arr {
			out[i] = v.arr[i].Interface()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.obj))
		for k, e := range v.obj {
			out[k] = e.Interface()
		}
		return out
	}
	return nil
}

// Equal reports whether v and o hold the same JSON value. Arrays and objects
// are compared element-wise; a nil and an empty container are equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindBigInt:
		return v.s == o.s
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return membersEqual(v.obj, o.obj)
	}
	return false
}

func membersEqual(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}

// number is satisfied by json.Number from encoding/json and from
// github.com/goccy/go-json.
type number interface {
	String() string
	Int64() (int64, error)
	Float64() (float64, error)
}

// ValueOf converts a native Go value into a Value. It accepts the types
// produced by JSON and YAML decoders, Go integer and float types, and Value
// itself.
func ValueOf(x interface{}) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
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
		return uintValue(uint64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return uintValue(t), nil
	case *big.Int:
		return BigInt(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case number:
		return numberValue(t)
	case []interface{}:
		arr := make([]Value, len(t))
		for i, e := range t {
			v, err := ValueOf(e)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Array(arr...), nil
	case []Value:
		return Array(t...), nil
	case map[string]interface{}:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			v, err := ValueOf(e)
			if err != nil {
				return Value{}, err
			}
			obj[k] = v
		}
		return Map(obj), nil
	case map[string]Value:
		return Map(t), nil
	case Properties:
		return Map(t), nil
	}
	return Value{}, errors.NotSupportedf("value of type %T", x)
}

func uintValue(n uint64) Value {
	if n > math.MaxInt64 {
		return BigInt(new(big.Int).SetUint64(n))
	}
	return Int(int64(n))
}

// numberValue keeps the literal's kind: integers stay KindInt (KindBigInt
// past int64), anything with a fraction or exponent becomes KindFloat.
func numberValue(n number) (Value, error) {
	if isIntLiteral(n.String()) {
		if i, err := n.Int64(); err == nil {
			return Int(i), nil
		}
		b, ok := new(big.Int).SetString(n.String(), 10)
		if !ok {
			return Value{}, errors.NotValidf("integer %s", n.String())
		}
		return BigInt(b), nil
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, errors.Errorf("number %s out of float64 range", n.String())
	}
	return Float(f), nil
}

func isIntLiteral(s string) bool {
	return !strings.ContainsAny(s, ".eE")
}
