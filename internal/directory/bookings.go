package directory

import (
	"context"

	"github.com/MrSnakeDoc/alumnet/internal/domain"
	"github.com/MrSnakeDoc/alumnet/internal/store"
)

// ListBookings returns every booking in creation order.
func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return store.Read[domain.Booking](ctx, s.store, store.Bookings)
}

// CreateBooking stores b with a fresh id and createdAt. Referenced students
// and alumni are not checked and overlapping slots are allowed.
func (s *Service) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	b.Stamp(s.newID(), s.nowMillis())

	err := store.Update(ctx, s.store, store.Bookings, func(list []domain.Booking) ([]domain.Booking, error) {
		return append(list, b), nil
	})
	if err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

// DeleteBooking removes the booking with the given id and reports how many
// were removed. An unknown id is not an error.
func (s *Service) DeleteBooking(ctx context.Context, id string) (int, error) {
	removed := 0
	err := store.Update(ctx, s.store, store.Bookings, func(list []domain.Booking) ([]domain.Booking, error) {
		kept := list[:0]
		for _, b := range list {
			if b.ID == id {
				removed++
				continue
			}
			kept = append(kept, b)
		}
		return kept, nil
	})
	return removed, err
}
