package handlers

import (
	"errors"
	"net/http"

	"jokepatra/internal/repository"
	"jokepatra/internal/service"
	"jokepatra/internal/validation"

	"go.uber.org/zap"
)

const (
	msgUnauthorized       = "Unauthorized"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidBody        = "Invalid request body"
	msgArticleNotFound    = "Article not found"
)

// writeServiceError maps an error from the service layer onto the taxonomy:
// validation 400, credentials 401, missing row 404, everything else 500 with
// the underlying message.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error

	switch {
	case errors.As(err, &verr):
		WriteError(w, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidImage):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, msgInvalidCredentials, http.StatusUnauthorized)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, msgArticleNotFound, http.StatusNotFound)
	default:
		h.Logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
