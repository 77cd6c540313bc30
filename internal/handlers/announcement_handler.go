package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"churchapi/internal/service"
)

// AnnouncementHandler serves announcements
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, announcements)
}

func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.AnnouncementInput
	if !decodeJSON(w, r, &in) {
		return
	}

	announcement, err := h.announcementService.Create(r.Context(), in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, announcement)
}

func (h *AnnouncementHandler) Get(w http.ResponseWriter, r *http.Request) {
	announcement, err := h.announcementService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, announcement)
}
