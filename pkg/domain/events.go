package domain

import (
	"context"
	"time"

	"github.com/nicocarlier/safe-env-lite/pkg/schema"
)

// EventType defines the category of the event.
type EventType string

const (
	EventFieldResolved      EventType = "field_resolved"
	EventProblem            EventType = "problem"
	EventValidationComplete EventType = "validation_complete"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// FieldEvent describes a resolved variable. It never carries the value.
type FieldEvent struct {
	EventBase
	Key     string      `json:"key"`
	Kind    schema.Kind `json:"kind,omitempty"`
	Defined bool        `json:"defined"`
	Null    bool        `json:"null,omitempty"`
	Secret  bool        `json:"secret,omitempty"`
}

// ProblemEvent describes a variable that failed validation.
// For secret variables the raw value is stripped from Problem.
type ProblemEvent struct {
	EventBase
	Problem schema.Problem `json:"problem"`
	Secret  bool           `json:"secret,omitempty"`
}

// ValidationEvent summarizes a validation pass.
type ValidationEvent struct {
	EventBase
	Fields   int           `json:"fields"`
	Problems int           `json:"problems"`
	Duration time.Duration `json:"duration"`
}

// Valid reports whether the pass produced no problems.
func (e *ValidationEvent) Valid() bool {
	return e.Problems == 0
}

// LifecycleHooks defines callbacks for validation observability.
type LifecycleHooks struct {
	OnField    func(context.Context, *FieldEvent)
	OnProblem  func(context.Context, *ProblemEvent)
	OnComplete func(context.Context, *ValidationEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnField:    chain(h.OnField, other.OnField),
		OnProblem:  chain(h.OnProblem, other.OnProblem),
		OnComplete: chain(h.OnComplete, other.OnComplete),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
