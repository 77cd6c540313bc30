package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"churchapi/internal/service"
)

// ChildHandler serves the caller's children
type ChildHandler struct {
	childService *service.ChildService
}

// NewChildHandler creates a new child handler
func NewChildHandler(childService *service.ChildService) *ChildHandler {
	return &ChildHandler{childService: childService}
}

func (h *ChildHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	children, err := h.childService.ListMine(r.Context(), actor)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, children)
}

func (h *ChildHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	var in service.ChildInput
	if !decodeJSON(w, r, &in) {
		return
	}

	child, err := h.childService.Create(r.Context(), actor, in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, child)
}

func (h *ChildHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	child, err := h.childService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, child)
}

func (h *ChildHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	var in service.ChildInput
	if !decodeJSON(w, r, &in) {
		return
	}

	child, err := h.childService.Update(r.Context(), actor, chi.URLParam(r, "id"), in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, child)
}

func (h *ChildHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	if err := h.childService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondNoContent(w)
}
