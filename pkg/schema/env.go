package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
)

// MaskedValue replaces secret values in Masked output.
const MaskedValue = "***"

// Env is the resolved environment returned by Validate.
// It holds exactly the declared variables and cannot be modified: every
// accessor returns a copy. Safe for concurrent readers.
type Env struct {
	keys   []string
	values map[string]Value
	secret map[string]bool
}

func newEnv(size int) *Env {
	return &Env{
		keys:   make([]string, 0, size),
		values: make(map[string]Value, size),
		secret: make(map[string]bool),
	}
}

// set is only called while Validate assembles the result.
func (e *Env) set(key string, v Value, secret bool) {
	if _, exists := e.values[key]; !exists {
		e.keys = append(e.keys, key)
	}
	e.values[key] = v
	if secret {
		e.secret[key] = true
	}
}

// Get returns the resolved value of key and whether key was declared.
func (e *Env) Get(key string) (Value, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Has reports whether key was declared in the schema.
func (e *Env) Has(key string) bool {
	_, ok := e.values[key]
	return ok
}

// IsSet reports whether key resolved to anything other than undefined.
func (e *Env) IsSet(key string) bool {
	return e.values[key].Defined()
}

// IsNull reports whether key resolved to null.
func (e *Env) IsNull(key string) bool {
	return e.values[key].IsNull()
}

// IsSecret reports whether key was declared secret.
func (e *Env) IsSecret(key string) bool {
	return e.secret[key]
}

// String returns the string value of key, or "" when it is not a string.
func (e *Env) String(key string) string {
	s, _ := e.values[key].AsString()
	return s
}

// Number returns the number value of key, or 0 when it is not a number.
func (e *Env) Number(key string) float64 {
	n, _ := e.values[key].AsNumber()
	return n
}

// Int returns the number value of key truncated towards zero.
func (e *Env) Int(key string) int {
	n, ok := e.values[key].AsNumber()
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int(n)
}

// Bool returns the boolean value of key, or false when it is not a boolean.
func (e *Env) Bool(key string) bool {
	b, _ := e.values[key].AsBool()
	return b
}

// Keys returns the declared names in declaration order.
func (e *Env) Keys() []string {
	keys := make([]string, len(e.keys))
	copy(keys, e.keys)
	return keys
}

// Len returns the number of declared variables.
func (e *Env) Len() int {
	return len(e.keys)
}

// ToMap returns a fresh map of plain Go values. Undefined and null both
// map to nil; use Get to tell them apart.
func (e *Env) ToMap() map[string]any {
	out := make(map[string]any, len(e.keys))
	for _, k := range e.keys {
		out[k] = e.values[k].Interface()
	}
	return out
}

// Masked is like ToMap but replaces every defined secret value with
// MaskedValue.
func (e *Env) Masked() map[string]any {
	out := e.ToMap()
	for k := range e.secret {
		if e.values[k].Defined() && !e.values[k].IsNull() {
			out[k] = MaskedValue
		}
	}
	return out
}

// MarshalJSON encodes the masked view, preserving declaration order.
func (e *Env) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		v := e.values[k]
		if e.secret[k] && v.Defined() && !v.IsNull() {
			v = StringValue(MaskedValue)
		}
		val, err := v.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Decode copies the resolved values into out, which must be a pointer to a
// struct. Fields are matched by their `env` tag, falling back to a
// case-insensitive match on the field name. String values are converted to
// time.Duration and slices (comma separated) where the target field asks for
// them.
//
//	type Config struct {
//	    Port    int           `env:"PORT"`
//	    Debug   bool          `env:"DEBUG"`
//	    Timeout time.Duration `env:"TIMEOUT"`
//	    APIKey  *string       `env:"API_KEY"`
//	}
func (e *Env) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "env",
		Result:  out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(e.ToMap()); err != nil {
		return fmt.Errorf("failed to decode environment: %w", err)
	}
	return nil
}
