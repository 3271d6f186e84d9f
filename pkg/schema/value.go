package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type valueState uint8

const (
	stateUndefined valueState = iota
	stateNull
	stateSet
)

// Value is a resolved variable value: undefined, null, or a string, number
// or boolean. The zero Value is undefined.
type Value struct {
	state valueState
	kind  Kind
	str   string
	num   float64
	flag  bool
}

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{state: stateSet, kind: String, str: s} }

// NumberValue returns a number Value.
func NumberValue(n float64) Value { return Value{state: stateSet, kind: Number, num: n} }

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{state: stateSet, kind: Boolean, flag: b} }

// NullValue returns an explicit null.
func NullValue() Value { return Value{state: stateNull} }

// ValueOf converts a decoded document literal into a Value.
// nil becomes null; unknown types are stringified.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return x
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case float64:
		return NumberValue(x)
	case float32:
		return NumberValue(float64(x))
	case int:
		return NumberValue(float64(x))
	case int8:
		return NumberValue(float64(x))
	case int16:
		return NumberValue(float64(x))
	case int32:
		return NumberValue(float64(x))
	case int64:
		return NumberValue(float64(x))
	case uint:
		return NumberValue(float64(x))
	case uint8:
		return NumberValue(float64(x))
	case uint16:
		return NumberValue(float64(x))
	case uint32:
		return NumberValue(float64(x))
	case uint64:
		return NumberValue(float64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return NumberValue(f)
		}
		return StringValue(x.String())
	default:
		return StringValue(fmt.Sprint(x))
	}
}

// Defined reports whether v is anything other than undefined.
func (v Value) Defined() bool { return v.state != stateUndefined }

// IsNull reports whether v is an explicit null.
func (v Value) IsNull() bool { return v.state == stateNull }

// Kind returns the primitive kind of v, or "" for undefined and null.
func (v Value) Kind() Kind {
	if v.state != stateSet {
		return ""
	}
	return v.kind
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.str, v.state == stateSet && v.kind == String
}

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.state == stateSet && v.kind == Number
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.state == stateSet && v.kind == Boolean
}

// Interface returns v as a plain Go value: string, float64, bool or nil.
func (v Value) Interface() any {
	if v.state != stateSet {
		return nil
	}
	switch v.kind {
	case String:
		return v.str
	case Number:
		return v.num
	case Boolean:
		return v.flag
	default:
		return nil
	}
}

// String renders v for humans.
func (v Value) String() string {
	switch v.state {
	case stateUndefined:
		return "undefined"
	case stateNull:
		return "null"
	}
	switch v.kind {
	case Number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case Boolean:
		return strconv.FormatBool(v.flag)
	default:
		return v.str
	}
}

// MarshalJSON encodes undefined and null as JSON null. Infinite numbers,
// which JSON cannot carry, are encoded as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if n, ok := v.AsNumber(); ok && math.IsInf(n, 0) {
		return json.Marshal(v.String())
	}
	return json.Marshal(v.Interface())
}
