package schema

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

var (
	truthy = []string{"1", "true", "yes", "on"}
	falsy  = []string{"0", "false", "no", "off"}
)

// checkEnum resolves an enum field. The raw value is returned unchanged
// when it is a member of the allowed set.
func checkEnum(key string, f enumField, raw string, present bool) (Value, *Problem) {
	if !present {
		p := newProblem(key, CodeMissingEnum,
			fmt.Sprintf("is missing (enum: allowed %s)", quoteAll(f.values)))
		return Value{}, &p
	}
	if !slices.Contains(f.values, raw) {
		p := rejected(key, CodeInvalidEnum,
			"must be one of: "+strings.Join(f.values, ", "), raw)
		return Value{}, &p
	}
	return StringValue(raw), nil
}

// coerce converts a present raw string into the field's kind.
func coerce(key string, f primitiveField, raw string) (Value, *Problem) {
	switch f.kind {
	case String:
		if f.nullable && raw == "null" {
			return NullValue(), nil
		}
		return StringValue(raw), nil

	case Number:
		n, ok := parseNumber(raw)
		if !ok {
			p := rejected(key, CodeInvalidNumber, "is not a valid number", raw)
			return Value{}, &p
		}
		return NumberValue(n), nil

	case Boolean:
		b, ok := parseBool(raw)
		if !ok {
			p := rejected(key, CodeInvalidBoolean, "is not a valid boolean", raw)
			return Value{}, &p
		}
		return BoolValue(b), nil

	default:
		p := rejected(key, CodeUnsupportedType,
			fmt.Sprintf("has unsupported type %q", string(f.kind)), raw)
		return Value{}, &p
	}
}

// parseNumber accepts any decimal or hexadecimal float literal, ignoring
// surrounding whitespace. Empty input, NaN and out-of-range values fail.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func parseBool(raw string) (bool, bool) {
	s := strings.ToLower(raw)
	switch {
	case slices.Contains(truthy, s):
		return true, true
	case slices.Contains(falsy, s):
		return false, true
	default:
		return false, false
	}
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ", ")
}
