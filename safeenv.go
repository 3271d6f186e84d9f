package safeenv

import (
	"context"
	"log/slog"
	"time"

	"github.com/nicocarlier/safe-env-lite/internal/logging"
	"github.com/nicocarlier/safe-env-lite/pkg/adapters/osenv"
	"github.com/nicocarlier/safe-env-lite/pkg/domain"
	"github.com/nicocarlier/safe-env-lite/pkg/ports"
	"github.com/nicocarlier/safe-env-lite/pkg/schema"
)

// Loader runs a schema against a source and reports the outcome to the
// configured logger and hooks. A Loader holds no state between calls.
type Loader struct {
	source ports.Source
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// Option defines a functional option for configuring the Loader.
type Option func(*Loader)

// WithSource sets where raw values are read from (default: process environment).
func WithSource(src ports.Source) Option {
	return func(l *Loader) {
		l.source = src
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. Multiple calls are merged.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(l *Loader) {
		l.hooks = l.hooks.Merge(hooks)
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}

	if l.source == nil {
		l.source = osenv.New()
	}
	if l.logger == nil {
		l.logger = logging.NewNop()
	}

	return l
}

// Load validates s against the configured source.
// On failure the error is a *schema.ValidationError.
func (l *Loader) Load(ctx context.Context, s schema.Schema) (*schema.Env, error) {
	start := l.now()
	env, err := schema.Validate(s, l.source)
	elapsed := l.now().Sub(start)

	problems := schema.Problems(err)
	if err != nil && problems == nil {
		// Validate only ever fails with a *ValidationError.
		return nil, err
	}

	if env != nil {
		for _, key := range env.Keys() {
			l.fieldResolved(ctx, env, key)
		}
	}
	for _, p := range problems {
		l.problem(ctx, s, p)
	}

	summary := &domain.ValidationEvent{
		EventBase: l.event(domain.EventValidationComplete),
		Fields:    len(s.Names()),
		Problems:  len(problems),
		Duration:  elapsed,
	}
	if summary.Valid() {
		l.logger.Info("environment validated", "fields", summary.Fields, "duration", elapsed)
	} else {
		l.logger.Error("environment validation failed", "fields", summary.Fields, "problems", summary.Problems)
	}
	if l.hooks.OnComplete != nil {
		l.hooks.OnComplete(ctx, summary)
	}

	return env, err
}

// MustLoad is like Load but panics with the *schema.ValidationError.
func (l *Loader) MustLoad(ctx context.Context, s schema.Schema) *schema.Env {
	env, err := l.Load(ctx, s)
	if err != nil {
		panic(err)
	}
	return env
}

// Load validates s with a Loader built from opts.
func Load(ctx context.Context, s schema.Schema, opts ...Option) (*schema.Env, error) {
	return New(opts...).Load(ctx, s)
}

// MustLoad validates s with a Loader built from opts and panics on failure.
func MustLoad(ctx context.Context, s schema.Schema, opts ...Option) *schema.Env {
	return New(opts...).MustLoad(ctx, s)
}

func (l *Loader) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: l.now(), Type: t}
}

func (l *Loader) fieldResolved(ctx context.Context, env *schema.Env, key string) {
	v, _ := env.Get(key)
	evt := &domain.FieldEvent{
		EventBase: l.event(domain.EventFieldResolved),
		Key:       key,
		Kind:      v.Kind(),
		Defined:   v.Defined(),
		Null:      v.IsNull(),
		Secret:    env.IsSecret(key),
	}

	l.logger.Debug("variable resolved", "key", key, "kind", evt.Kind, "defined", evt.Defined, "null", evt.Null)
	if l.hooks.OnField != nil {
		l.hooks.OnField(ctx, evt)
	}
}

func (l *Loader) problem(ctx context.Context, s schema.Schema, p schema.Problem) {
	secret := s.Secret(p.Key)
	if secret {
		p.Value = nil
	}

	attrs := []any{"key", p.Key, "code", p.Code, "reason", p.Message}
	if p.Value != nil {
		attrs = append(attrs, "value", *p.Value)
	}
	l.logger.Warn("invalid variable", attrs...)

	if l.hooks.OnProblem != nil {
		l.hooks.OnProblem(ctx, &domain.ProblemEvent{
			EventBase: l.event(domain.EventProblem),
			Problem:   p,
			Secret:    secret,
		})
	}
}
