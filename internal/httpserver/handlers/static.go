package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
)

// Static serves the client: "/" returns index.html and other paths are
// resolved against StaticDir. Unknown /api paths stay JSON 404s.
func Static(d deps.Deps) http.HandlerFunc {
	files := http.FileServer(http.Dir(d.StaticDir))
	index := filepath.Join(d.StaticDir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		if r.URL.Path == "/" {
			http.ServeFile(w, r, index)
			return
		}
		files.ServeHTTP(w, r)
	}
}
