package handlers

import (
	"net/http"

	"churchapi/internal/service"
)

// DonationHandler serves donations
type DonationHandler struct {
	donationService *service.DonationService
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationService *service.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	var in service.DonationInput
	if !decodeJSON(w, r, &in) {
		return
	}

	donation, err := h.donationService.Create(r.Context(), actor, in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, donation)
}

func (h *DonationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r.Context())

	donations, err := h.donationService.ListMine(r.Context(), actor)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, donations)
}

func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, donations)
}
