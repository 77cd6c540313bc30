package handlers

import (
	"net/http"

	"churchapi/internal/models"
	"churchapi/internal/service"
)

// UserHandler exposes account records
type UserHandler struct {
	userService  *service.UserService
	hidePassword bool
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, hidePassword bool) *UserHandler {
	return &UserHandler{userService: userService, hidePassword: hidePassword}
}

// presentUser drops the stored password hash when configured to
func presentUser(user models.User, hidePassword bool) models.User {
	if hidePassword {
		return user.Redacted()
	}
	return user
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, presentUser(u, h.hidePassword))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	user, err := h.userService.Me(r.Context(), actor)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, presentUser(*user, h.hidePassword))
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	var in service.ProfileInput
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := h.userService.UpdateMe(r.Context(), actor, in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, presentUser(*user, h.hidePassword))
}
