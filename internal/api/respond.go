// Package api implements the HTTP handlers for the accounting API.
package api

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of error responses and simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
	BatchID int64  `json:"batchId,omitempty"`
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes a JSON error response with a human-readable message.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}
