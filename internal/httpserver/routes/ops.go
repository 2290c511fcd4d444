package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/mw"
)

func init() { Register(registerOps) }

// Ops endpoints sit behind the CIDR allow-list; the ones exposing
// internals or triggering work also require an allowed Host.
func registerOps(r chi.Router, d deps.Deps) {
	r.Group(func(r chi.Router) {
		r.Use(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))

		r.Get("/healthz", handlers.Healthz(d))
		r.Get("/readyz", handlers.Readyz(d))

		hosted := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
		hosted.Get("/infra", handlers.Infra(d))
		hosted.Post("/reload", handlers.Reload(d))
	})
}
