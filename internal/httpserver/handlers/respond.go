package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/alumnet/internal/directory"
	"github.com/MrSnakeDoc/alumnet/internal/httpserver/deps"
	"github.com/MrSnakeDoc/alumnet/internal/logger"
	"github.com/MrSnakeDoc/alumnet/internal/store"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

var (
	errInvalidBody  = errors.New("invalid JSON body")
	errBodyTooLarge = errors.New("request body too large")
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// readObject returns the request body as a raw JSON object.
// An empty body reads as {}; anything other than an object is rejected.
// The Content-Type header is not consulted.
func readObject(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, errInvalidBody
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return json.RawMessage("{}"), nil
	}
	if body[0] != '{' || !json.Valid(body) {
		return nil, errInvalidBody
	}
	return body, nil
}

// decodeObject reads the body into v, writing a 400 (or 413) on failure.
func decodeObject(w http.ResponseWriter, r *http.Request, v any) bool {
	raw, err := readObject(w, r)
	if err == nil {
		err = json.Unmarshal(raw, v)
	}
	if err == nil {
		return true
	}
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, errBodyTooLarge.Error())
		return false
	}
	writeError(w, http.StatusBadRequest, errInvalidBody.Error())
	return false
}

// writeServiceError maps directory and store errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, d deps.Deps, op string, err error) {
	var verr *directory.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}

	fields := []logger.Field{
		logger.String("op", op),
		logger.String("path", r.URL.Path),
		logger.Error(err),
	}
	if errors.Is(err, store.ErrStorageUnavailable) {
		d.Logger.Error("storage unavailable", fields...)
	} else {
		d.Logger.Error("request failed", fields...)
	}
	writeError(w, http.StatusInternalServerError, "storage unavailable")
}
