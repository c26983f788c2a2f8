package handler

import (
	"errors"
	"net/http"

	"github.com/twnguydev/uniteam/internal/middleware"
	"github.com/twnguydev/uniteam/internal/service"
)

// ParticipantHandler handles HTTP requests for event participation.
type ParticipantHandler struct {
	service *service.ParticipantService
}

// NewParticipantHandler creates a new ParticipantHandler.
func NewParticipantHandler(svc *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{service: svc}
}

// HandleJoin handles POST /api/v1/events/{event_id}/participants requests.
// The caller joins the event.
func (h *ParticipantHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	eventID, valid := pathID(r, "event_id")
	if !valid {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid event id"))
		return
	}

	p, err := h.service.Join(r.Context(), user.ID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrAlreadyParticipant):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// HandleLeave handles DELETE /api/v1/events/{event_id}/participants
// requests. The caller leaves the event.
func (h *ParticipantHandler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	eventID, valid := pathID(r, "event_id")
	if !valid {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid event id"))
		return
	}

	if err := h.service.Leave(r.Context(), user.ID, eventID); err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "participation removed"})
}

// HandleListByEvent handles GET /api/v1/events/{event_id}/participants.
func (h *ParticipantHandler) HandleListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, valid := pathID(r, "event_id")
	if !valid {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid event id"))
		return
	}

	participants, err := h.service.ListByEvent(r.Context(), eventID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, participants)
}

// HandleListMine handles GET /api/v1/participations, returning the events
// the caller takes part in.
func (h *ParticipantHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	participants, err := h.service.ListByUser(r.Context(), user.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, participants)
}
