package directory

import (
	"context"

	"github.com/MrSnakeDoc/alumnet/internal/domain"
	"github.com/MrSnakeDoc/alumnet/internal/store"
)

// ListBookmarks returns every bookmark in creation order.
func (s *Service) ListBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	return store.Read[domain.Bookmark](ctx, s.store, store.Bookmarks)
}

// CreateBookmark appends b exactly as received.
func (s *Service) CreateBookmark(ctx context.Context, b domain.Bookmark) error {
	return store.Update(ctx, s.store, store.Bookmarks, func(list []domain.Bookmark) ([]domain.Bookmark, error) {
		return append(list, b), nil
	})
}

// DeleteBookmarks removes every bookmark pointing at alumniID and reports
// how many were removed.
func (s *Service) DeleteBookmarks(ctx context.Context, alumniID string) (int, error) {
	removed := 0
	err := store.Update(ctx, s.store, store.Bookmarks, func(list []domain.Bookmark) ([]domain.Bookmark, error) {
		kept := list[:0]
		for _, b := range list {
			if b.References(alumniID) {
				removed++
				continue
			}
			kept = append(kept, b)
		}
		return kept, nil
	})
	return removed, err
}
