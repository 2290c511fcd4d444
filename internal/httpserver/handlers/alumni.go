package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/alumnet/internal/domain"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
)

// ListAlumni handles GET /api/alumni.
func ListAlumni(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alumni, err := d.Directory.ListAlumni(r.Context())
		if err != nil {
			writeServiceError(w, r, d, "list_alumni", err)
			return
		}
		writeJSON(w, http.StatusOK, alumni)
	}
}

// CreateAlumni handles POST /api/alumni.
func CreateAlumni(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile domain.Alumni
		if !decodeObject(w, r, &profile) {
			return
		}

		created, err := d.Directory.CreateAlumni(r.Context(), profile)
		if err != nil {
			writeServiceError(w, r, d, "create_alumni", err)
			return
		}

		d.Logger.Info("alumni created",
			logger.String("id", created.ID),
			logger.String("name", created.DisplayName()))
		writeJSON(w, http.StatusOK, created)
	}
}

// SearchAlumni handles GET /api/alumni/search?q=.
// The query is used as given; an empty query returns the whole directory.
func SearchAlumni(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		results, err := d.Directory.SearchAlumni(r.Context(), query)
		if err != nil {
			writeServiceError(w, r, d, "search_alumni", err)
			return
		}

		d.Logger.Debug("alumni search",
			logger.String("query", query),
			logger.Int("results", len(results)))
		writeJSON(w, http.StatusOK, results)
	}
}
