package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/alumnet/internal/directory"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
)

// RegisterStudent handles POST /api/students.
func RegisterStudent(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := readObject(w, r)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, errBodyTooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			writeError(w, status, err.Error())
			return
		}

		// A name or college of the wrong JSON type is left empty and
		// reported by validation like a missing one.
		var req directory.StudentRequest
		_ = json.Unmarshal(raw, &req)

		student, err := d.Directory.RegisterStudent(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, d, "register_student", err)
			return
		}

		d.Logger.Info("student registered", logger.String("id", student.ID))
		writeJSON(w, http.StatusOK, student)
	}
}
