package handlers

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope of every API answer.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, resp Response, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// WriteError - sends a failed envelope
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, Response{Success: false, Error: message}, statusCode)
}

// WriteSuccess - sends a successful envelope, message may be empty
func WriteSuccess(w http.ResponseWriter, data any, message string, statusCode int) {
	writeJSON(w, Response{Success: true, Data: data, Message: message}, statusCode)
}
