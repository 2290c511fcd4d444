package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/handlers"
)

func init() { Register(registerStudents, allowedHost) }

func registerStudents(r chi.Router, d deps.Deps) {
	r.Post("/api/students", handlers.RegisterStudent(d))
}
