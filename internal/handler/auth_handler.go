package handlers

import (
	"net/http"

	"jokepatra/internal/models"
	"jokepatra/internal/validation"

	"go.uber.org/zap"
)

type UserResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req validation.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := h.Validate.ValidateLogin(&req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Logger.Info("admin logged in", zap.String("user_id", user.ID))

	WriteSuccess(w, LoginResponse{
		Token: token,
		User: UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, "Login successful", http.StatusOK)
}
