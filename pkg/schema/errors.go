package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ProblemCode classifies a Problem for tooling.
type ProblemCode string

const (
	CodeMissingEnum     ProblemCode = "missing_enum"
	CodeInvalidEnum     ProblemCode = "invalid_enum"
	CodeInvalidNumber   ProblemCode = "invalid_number"
	CodeInvalidBoolean  ProblemCode = "invalid_boolean"
	CodeRequired        ProblemCode = "required"
	CodeUnsupportedType ProblemCode = "unsupported_type"
)

// Header is the first line of every ValidationError message.
const Header = "Invalid environment configuration:"

// Problem represents a single variable that failed validation.
type Problem struct {
	Key     string      `json:"key"`
	Message string      `json:"message"`
	Value   *string     `json:"value,omitempty"` // Raw value, set only when one was present and rejected
	Code    ProblemCode `json:"code"`
}

func (p Problem) Error() string {
	if p.Value == nil {
		return fmt.Sprintf("%s: %s", p.Key, p.Message)
	}
	return fmt.Sprintf("%s: %s (got %q)", p.Key, p.Message, *p.Value)
}

// ValidationError is the single error returned when one or more variables
// fail validation. Problems are in declaration order.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(Header)
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		b.WriteString(p.Error())
	}
	return b.String()
}

// Keys returns the names of the failing variables.
func (e *ValidationError) Keys() []string {
	keys := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		keys[i] = p.Key
	}
	return keys
}

// Problems returns the problems carried by err if it is, or wraps, a
// *ValidationError. Otherwise returns nil.
func Problems(err error) []Problem {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Problems
	}
	return nil
}

func newProblem(key string, code ProblemCode, message string) Problem {
	return Problem{Key: key, Message: message, Code: code}
}

func rejected(key string, code ProblemCode, message, raw string) Problem {
	return Problem{Key: key, Message: message, Value: &raw, Code: code}
}
