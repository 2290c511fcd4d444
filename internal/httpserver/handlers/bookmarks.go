package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/alumnet/internal/domain"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
)

func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookmarks, err := d.Directory.ListBookmarks(r.Context())
		if err != nil {
			writeServiceError(w, r, d, "list_bookmarks", err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarks)
	}
}

func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bookmark domain.Bookmark
		if !decodeObject(w, r, &bookmark) {
			return
		}

		if err := d.Directory.CreateBookmark(r.Context(), bookmark); err != nil {
			writeServiceError(w, r, d, "create_bookmark", err)
			return
		}
		writeSuccess(w)
	}
}

// DeleteBookmarks handles DELETE /api/bookmarks/{id}, where id is the
// bookmarked alumni id. Every matching bookmark is removed.
func DeleteBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alumniID := chi.URLParam(r, "id")

		removed, err := d.Directory.DeleteBookmarks(r.Context(), alumniID)
		if err != nil {
			writeServiceError(w, r, d, "delete_bookmarks", err)
			return
		}

		d.Logger.Info("bookmarks deleted",
			logger.String("alumni_id", alumniID),
			logger.Int("removed", removed))
		writeSuccess(w)
	}
}
