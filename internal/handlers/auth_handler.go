package handlers

import (
	"net/http"

	"churchapi/internal/service"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authService  *service.AuthService
	hidePassword bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, hidePassword bool) *AuthHandler {
	return &AuthHandler{authService: authService, hidePassword: hidePassword}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := h.authService.Register(r.Context(), in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, presentUser(*user, h.hidePassword))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}

	token, err := h.authService.Login(r.Context(), in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, token)
}
