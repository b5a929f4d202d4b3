// Package redis implements ports.BlobStore on a Redis hash, for deployments
// that share collection storage across hosts.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/castkit/scenevault/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

const defaultKey = "scenevault:collections"

// Store implements ports.BlobStore using Redis. All documents live in one
// hash keyed by collection name.
type Store struct {
	client *backend.Client
	key    string
}

// Option configures the Store.
type Option func(*Store)

// WithKey overrides the hash key documents are stored under.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// New creates a new Redis store with options.
func New(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		key:    defaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write stores the document bytes in the hash.
func (s *Store) Write(ctx context.Context, name string, data []byte) error {
	if err := s.client.HSet(ctx, s.key, name, data).Err(); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

// Read returns the document bytes.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.HGet(ctx, s.key, name).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis hget: %w", err)
	}
	return data, nil
}

// Delete removes the document. Deleting a missing document is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.client.HDel(ctx, s.key, name).Err(); err != nil {
		return fmt.Errorf("redis hdel: %w", err)
	}
	return nil
}

// Exists reports whether the document is present.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := s.client.HExists(ctx, s.key, name).Result()
	if err != nil {
		return false, fmt.Errorf("redis hexists: %w", err)
	}
	return ok, nil
}

// List returns the stored names in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.client.HKeys(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hkeys: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
