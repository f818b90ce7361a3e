package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aaronlopez/review-board-be/internal/apperror"
)

// writeJSON writes v as the JSON response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps err onto the application error taxonomy and writes the
// client-facing JSON body. Unclassified errors surface as a plain 500; their
// details stay in the server logs.
func writeError(w http.ResponseWriter, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternal("server error", err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
