// Package redis keeps each user's latest search results for export.
// Store is backed by Redis; MemoryStore is the in-process fallback used
// when no Redis address is configured.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

const keyPrefix = "leadfinder:search:results:"

// Store is a Redis-backed result store. Entries expire after ttl.
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewStore creates a Redis result store over an existing client.
func NewStore(client *goredis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Connect opens a client and checks that the server answers.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Put replaces the stored results of the user.
func (s *Store) Put(ctx context.Context, userID uuid.UUID, leads []domain.Lead) error {
	b, err := json.Marshal(leads)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+userID.String(), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("store results: %w", err)
	}
	return nil
}

// Get returns the stored results of the user, or nil when there are none.
func (s *Store) Get(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error) {
	b, err := s.client.Get(ctx, keyPrefix+userID.String()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load results: %w", err)
	}

	var leads []domain.Lead
	if err := json.Unmarshal(b, &leads); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	return leads, nil
}

// Ping reports whether Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// MemoryStore is a bounded in-process result store.
type MemoryStore struct {
	cache *expirable.LRU[uuid.UUID, []domain.Lead]
}

// NewMemoryStore creates a store holding at most size users' results,
// each for at most ttl.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: expirable.NewLRU[uuid.UUID, []domain.Lead](size, nil, ttl)}
}

// Put replaces the stored results of the user.
func (m *MemoryStore) Put(ctx context.Context, userID uuid.UUID, leads []domain.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.cache.Add(userID, append([]domain.Lead(nil), leads...))
	return nil
}

// Get returns the stored results of the user, or nil when there are none.
func (m *MemoryStore) Get(ctx context.Context, userID uuid.UUID) ([]domain.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	leads, ok := m.cache.Get(userID)
	if !ok {
		return nil, nil
	}
	return append([]domain.Lead(nil), leads...), nil
}
