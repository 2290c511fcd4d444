package handlers

import (
	"context"
	"net/http"

	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
	"github.com/MrSnakeDoc/alumnet/internal/store"
)

type storageStatus struct {
	Backend     string                   `json:"backend"`
	OK          bool                     `json:"ok"`
	Collections map[store.Collection]int `json:"collections,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string        `json:"mode"`
	Storage    storageStatus `json:"storage"`
	SeedImport string        `json:"seed_import"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		storage := checkStorage(ctx, d)

		resp := infraResponse{
			Mode:       "operational",
			Storage:    storage,
			SeedImport: "disabled",
		}
		if !storage.OK {
			resp.Mode = "critical"
		}
		if d.ReloadTrigger != nil {
			resp.SeedImport = "enabled"
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func checkStorage(ctx context.Context, d deps.Deps) storageStatus {
	status := storageStatus{Backend: d.Store.BackendName()}

	counts, err := d.Directory.Counts(ctx)
	if err != nil {
		d.Logger.Warn("infra: storage check failed", logger.Error(err))
		status.Error = "storage unavailable"
		return status
	}

	status.OK = true
	status.Collections = counts
	return status
}
