package rest

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// detailResponse matches the error shape of the API: a single
// human-readable detail message.
func detailResponse(msg string) map[string]string {
	return map[string]string{"detail": msg}
}
