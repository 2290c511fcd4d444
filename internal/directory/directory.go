package directory

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MrSnakeDoc/alumnet/internal/store"
)

// Service implements the student, alumni, booking and bookmark operations
// on top of the collection store. Each mutation is one locked
// load-transform-save round trip on a single collection.
type Service struct {
	store    *store.Store
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the clock used for createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides the id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// New creates a directory service backed by st.
func New(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:    st,
		validate: validator.New(),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) nowMillis() int64 { return s.now().UnixMilli() }

// Counts returns the number of documents per collection.
func (s *Service) Counts(ctx context.Context) (map[store.Collection]int, error) {
	counts := make(map[store.Collection]int, 4)
	for _, c := range store.All() {
		n, err := s.store.Count(ctx, c)
		if err != nil {
			return nil, err
		}
		counts[c] = n
	}
	return counts, nil
}
