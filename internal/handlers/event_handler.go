package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"churchapi/internal/models"
	"churchapi/internal/service"
)

// EventHandler serves the event calendar
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List handles GET /events?date=&category=
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.EventFilter{
		From:     query.Get("date"),
		Category: query.Get("category"),
	}

	events, err := h.eventService.List(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.EventInput
	if !decodeJSON(w, r, &in) {
		return
	}

	event, err := h.eventService.Create(r.Context(), in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.EventInput
	if !decodeJSON(w, r, &in) {
		return
	}

	event, err := h.eventService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.eventService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondNoContent(w)
}
