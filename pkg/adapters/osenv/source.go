// Package osenv reads variables from the process environment.
package osenv

import "os"

// Source implements ports.Source using os.LookupEnv.
type Source struct {
	prefix string
}

// Option configures a Source.
type Option func(*Source)

// WithPrefix makes every lookup for KEY read PREFIX+KEY instead.
func WithPrefix(prefix string) Option {
	return func(s *Source) {
		s.prefix = prefix
	}
}

// New creates a process environment source.
func New(opts ...Option) *Source {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup reads prefix+key from the process environment.
func (s *Source) Lookup(key string) (string, bool) {
	return os.LookupEnv(s.prefix + key)
}
