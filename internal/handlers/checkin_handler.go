package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"churchapi/internal/service"
)

// CheckinHandler records and lists attendance
type CheckinHandler struct {
	checkinService *service.CheckinService
}

// NewCheckinHandler creates a new checkin handler
func NewCheckinHandler(checkinService *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkinService: checkinService}
}

func (h *CheckinHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	var in service.CheckinInput
	if !decodeJSON(w, r, &in) {
		return
	}

	checkin, err := h.checkinService.Create(r.Context(), actor, in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, checkin)
}

func (h *CheckinHandler) ListByChild(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	checkins, err := h.checkinService.ListByChild(r.Context(), actor, chi.URLParam(r, "child_id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, checkins)
}

func (h *CheckinHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	checkins, err := h.checkinService.ListByEvent(r.Context(), chi.URLParam(r, "event_id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, checkins)
}
