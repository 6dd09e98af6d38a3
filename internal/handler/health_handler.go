package handlers

import (
	"net/http"
)

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	status, err := h.HealthService.Check(r.Context())
	if err != nil {
		writeJSON(w, Response{Success: false, Data: status, Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, status, "", http.StatusOK)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Not found", http.StatusNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
}
