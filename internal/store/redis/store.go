package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/alumnet/internal/store"
)

// Store keeps each collection as a single JSON string under CollectionKey.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis collection backend
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

func (s *Store) Name() string { return "redis" }

// Load retrieves a collection's raw JSON
func (s *Store) Load(ctx context.Context, c store.Collection) ([]byte, error) {
	data, err := s.client.Get(ctx, CollectionKey(c)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %w", CollectionKey(c), store.ErrCollectionMissing)
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return data, nil
}

// Save overwrites a collection
func (s *Store) Save(ctx context.Context, c store.Collection, data []byte) error {
	if err := s.client.Set(ctx, CollectionKey(c), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

// Ensure seeds an empty array unless the key already exists
func (s *Store) Ensure(ctx context.Context, c store.Collection) (bool, error) {
	created, err := s.client.SetNX(ctx, CollectionKey(c), "[]", 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to seed collection: %w", err)
	}
	return created, nil
}

// Collections lists the collections present in Redis
func (s *Store) Collections(ctx context.Context) ([]store.Collection, error) {
	var out []store.Collection
	iter := s.client.Scan(ctx, 0, KeyPrefixCollection+"*", 0).Iterator()
	for iter.Next(ctx) {
		c, err := ExtractCollection(iter.Val())
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan collections: %w", err)
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
