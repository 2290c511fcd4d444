package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/alumnet/internal/logger"
	"github.com/MrSnakeDoc/alumnet/internal/store"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewStore(client)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestStoreSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	if err := s.Save(ctx, store.Alumni, []byte(`[{"id":"a1"}]`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := mr.Get(CollectionKey(store.Alumni))
	if err != nil || raw != `[{"id":"a1"}]` {
		t.Errorf("redis value = %q, %v", raw, err)
	}

	got, err := s.Load(ctx, store.Alumni)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != `[{"id":"a1"}]` {
		t.Errorf("Load() = %s", got)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Load(context.Background(), store.Bookmarks)
	if !errors.Is(err, store.ErrCollectionMissing) {
		t.Errorf("Load() error = %v, want ErrCollectionMissing", err)
	}
}

func TestStoreEnsureAndCollections(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, err := s.Ensure(ctx, store.Students)
	if err != nil || !created {
		t.Fatalf("Ensure() = %v, %v; want true, nil", created, err)
	}
	created, err = s.Ensure(ctx, store.Students)
	if err != nil || created {
		t.Errorf("second Ensure() = %v, %v; want false, nil", created, err)
	}

	collections, err := s.Collections(ctx)
	if err != nil {
		t.Fatalf("Collections() error = %v", err)
	}
	if len(collections) != 1 || collections[0] != store.Students {
		t.Errorf("Collections() = %v, want [students]", collections)
	}
}

func TestStorePingFailsWhenServerDown(t *testing.T) {
	s, mr := newTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	mr.Close()
	if err := s.Ping(context.Background()); err == nil {
		t.Error("Ping() should fail once the server is gone")
	}
}

func TestExtractCollection(t *testing.T) {
	tests := []struct {
		key     string
		want    store.Collection
		wantErr bool
	}{
		{key: "alumnet:collection:alumni", want: store.Alumni},
		{key: "alumnet:collection:", wantErr: true},
		{key: "other:alumni", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ExtractCollection(tt.key)
		if (err != nil) != tt.wantErr {
			t.Errorf("ExtractCollection(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractCollection(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDialConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := Dial(context.Background(), ConnectOptions{
		Addr:           mr.Addr(),
		ConnectTimeout: time.Second,
		RetryInterval:  10 * time.Millisecond,
		MaxWait:        50 * time.Millisecond,
		PingTimeout:    200 * time.Millisecond,
	}, logger.NewNop())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestDialGivesUp(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Dial(context.Background(), ConnectOptions{
		Addr:           addr,
		ConnectTimeout: 100 * time.Millisecond,
		RetryInterval:  10 * time.Millisecond,
		MaxWait:        20 * time.Millisecond,
		PingTimeout:    20 * time.Millisecond,
	}, logger.NewNop())
	if err == nil {
		t.Fatal("Dial() should fail when redis is down")
	}
}

func TestDialRejectsInvalidOptions(t *testing.T) {
	_, err := Dial(context.Background(), ConnectOptions{Addr: "localhost:6379"}, logger.NewNop())
	if err == nil {
		t.Fatal("Dial() should reject zero timeouts")
	}
}
