package mw

import "net/http"

// deny writes a JSON error without going through the handlers package.
func deny(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + body + `"}` + "\n"))
}
