package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/handlers"
)

func init() { Register(registerBookings, allowedHost) }

func registerBookings(r chi.Router, d deps.Deps) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", handlers.ListBookings(d))
		r.Post("/", handlers.CreateBooking(d))
		r.Delete("/{id}", handlers.DeleteBooking(d))
	})
}
