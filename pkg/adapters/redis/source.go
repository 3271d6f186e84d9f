package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicocarlier/safe-env-lite/pkg/adapters/memory"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the hash read when no key is configured.
const DefaultKey = "safeenv:env"

// ErrSnapshotFailed is returned when the hash cannot be read.
var ErrSnapshotFailed = errors.New("failed to snapshot variables from redis")

// Store reads variables from a single Redis hash.
// Validation never talks to Redis directly: Snapshot copies the hash into
// an in-memory source first.
type Store struct {
	client *backend.Client
	key    string
}

type Option func(*Store)

// WithKey sets the hash holding the variables.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		key:    DefaultKey,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Key returns the hash this store reads.
func (s *Store) Key() string {
	return s.key
}

// Snapshot reads every field of the hash at once (HGETALL).
// A missing hash yields an empty source.
func (s *Store) Snapshot(ctx context.Context) (*memory.Source, error) {
	values, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSnapshotFailed, s.key, err)
	}
	return memory.NewSource(values), nil
}

// Put writes values into the hash. It is used to seed shared configuration.
func (s *Store) Put(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	args := make([]any, 0, len(values)*2)
	for k, v := range values {
		args = append(args, k, v)
	}
	if err := s.client.HSet(ctx, s.key, args...).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
