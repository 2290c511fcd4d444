package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/alumnet/internal/domain"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
)

func ListBookings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := d.Directory.ListBookings(r.Context())
		if err != nil {
			writeServiceError(w, r, d, "list_bookings", err)
			return
		}
		writeJSON(w, http.StatusOK, bookings)
	}
}

func CreateBooking(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var booking domain.Booking
		if !decodeObject(w, r, &booking) {
			return
		}

		created, err := d.Directory.CreateBooking(r.Context(), booking)
		if err != nil {
			writeServiceError(w, r, d, "create_booking", err)
			return
		}

		d.Logger.Info("booking created", logger.String("id", created.ID))
		writeJSON(w, http.StatusOK, created)
	}
}

// DeleteBooking handles DELETE /api/bookings/{id}. Unknown ids succeed.
func DeleteBooking(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		removed, err := d.Directory.DeleteBooking(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, d, "delete_booking", err)
			return
		}

		d.Logger.Info("booking deleted",
			logger.String("id", id),
			logger.Int("removed", removed))
		writeSuccess(w)
	}
}
