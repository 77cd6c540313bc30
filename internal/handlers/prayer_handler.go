package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"churchapi/internal/service"
)

// PrayerHandler serves prayer requests
type PrayerHandler struct {
	prayerService *service.PrayerService
}

// NewPrayerHandler creates a new prayer handler
func NewPrayerHandler(prayerService *service.PrayerService) *PrayerHandler {
	return &PrayerHandler{prayerService: prayerService}
}

func (h *PrayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	var in service.PrayerInput
	if !decodeJSON(w, r, &in) {
		return
	}

	prayer, err := h.prayerService.Create(r.Context(), actor, in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, prayer)
}

func (h *PrayerHandler) List(w http.ResponseWriter, r *http.Request) {
	prayers, err := h.prayerService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, prayers)
}

// UpdateStatus handles PATCH /prayers/{id}
func (h *PrayerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in service.PrayerStatusInput
	if !decodeJSON(w, r, &in) {
		return
	}

	prayer, err := h.prayerService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, prayer)
}
