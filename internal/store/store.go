package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Collection names one persisted JSON array.
type Collection string

const (
	Students  Collection = "students"
	Alumni    Collection = "alumni"
	Bookings  Collection = "bookings"
	Bookmarks Collection = "bookmarks"
)

// All returns every collection the application persists.
func All() []Collection {
	return []Collection{Students, Alumni, Bookings, Bookmarks}
}

var (
	// ErrStorageUnavailable is returned when a collection cannot be read,
	// decoded or written. Callers surface it as a server error.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCollectionMissing is returned by backends when a collection does not exist.
	ErrCollectionMissing = errors.New("collection missing")
)

// Backend persists whole collections as raw JSON arrays.
// It has no notion of records or partial writes.
type Backend interface {
	Name() string
	Load(ctx context.Context, c Collection) ([]byte, error)
	Save(ctx context.Context, c Collection, data []byte) error
	// Ensure creates c as an empty array if it does not exist yet.
	Ensure(ctx context.Context, c Collection) (created bool, err error)
	Ping(ctx context.Context) error
	Close() error
}

// Store serializes access to a Backend per collection.
// Every operation holds the collection lock for its whole read-modify-write
// round trip, so concurrent requests in one process never lose updates.
type Store struct {
	backend Backend

	mu    sync.Mutex
	locks map[Collection]*sync.Mutex
}

// New wraps a backend.
func New(b Backend) *Store {
	locks := make(map[Collection]*sync.Mutex, 4)
	for _, c := range All() {
		locks[c] = &sync.Mutex{}
	}
	return &Store{backend: b, locks: locks}
}

func (s *Store) lock(c Collection) func() {
	s.mu.Lock()
	l, ok := s.locks[c]
	if !ok {
		l = &sync.Mutex{}
		s.locks[c] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// BackendName returns the name of the underlying backend (file, sqlite, redis).
func (s *Store) BackendName() string { return s.backend.Name() }

// Ping checks that the backend is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.backend.Ping(ctx) }

// Close releases the backend.
func (s *Store) Close() error { return s.backend.Close() }

// EnsureAll creates every missing collection as an empty array and returns
// the ones it created.
func (s *Store) EnsureAll(ctx context.Context) ([]Collection, error) {
	var created []Collection
	for _, c := range All() {
		unlock := s.lock(c)
		ok, err := s.backend.Ensure(ctx, c)
		unlock()
		if err != nil {
			return created, fmt.Errorf("failed to ensure collection %s: %w", c, err)
		}
		if ok {
			created = append(created, c)
		}
	}
	return created, nil
}

// Read loads a whole collection.
func Read[T any](ctx context.Context, s *Store, c Collection) ([]T, error) {
	unlock := s.lock(c)
	defer unlock()

	return load[T](ctx, s.backend, c)
}

// Update loads c, applies fn and persists the result. When fn returns an
// error nothing is written and the error is returned unchanged.
func Update[T any](ctx context.Context, s *Store, c Collection, fn func([]T) ([]T, error)) error {
	unlock := s.lock(c)
	defer unlock()

	items, err := load[T](ctx, s.backend, c)
	if err != nil {
		return err
	}

	next, err := fn(items)
	if err != nil {
		return err
	}

	return save(ctx, s.backend, c, next)
}

// Count returns the number of documents in c without decoding them.
func (s *Store) Count(ctx context.Context, c Collection) (int, error) {
	docs, err := Read[json.RawMessage](ctx, s, c)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

func load[T any](ctx context.Context, b Backend, c Collection) ([]T, error) {
	data, err := b.Load(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrStorageUnavailable, c, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrStorageUnavailable, c, err)
	}
	// "null" decodes without error but is not a collection.
	if items == nil {
		return nil, fmt.Errorf("%w: decode %s: not a JSON array", ErrStorageUnavailable, c)
	}

	return items, nil
}

func save[T any](ctx context.Context, b Backend, c Collection, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorageUnavailable, c, err)
	}

	if err := b.Save(ctx, c, data); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrStorageUnavailable, c, err)
	}
	return nil
}
