package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/handlers"
)

func init() { Register(registerStatic) }

// Static files are only served when a client root is configured.
func registerStatic(r chi.Router, d deps.Deps) {
	if d.StaticDir == "" {
		return
	}
	r.Get("/*", handlers.Static(d))
}
