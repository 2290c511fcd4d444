package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/handlers"
)

func init() { Register(registerAlumni, allowedHost) }

func registerAlumni(r chi.Router, d deps.Deps) {
	r.Route("/api/alumni", func(r chi.Router) {
		r.Get("/", handlers.ListAlumni(d))
		r.Post("/", handlers.CreateAlumni(d))
		r.Get("/search", handlers.SearchAlumni(d))
	})
}
