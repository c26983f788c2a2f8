package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/twnguydev/uniteam/internal/middleware"
	"github.com/twnguydev/uniteam/internal/model"
	"github.com/twnguydev/uniteam/internal/service"
)

// NotificationHandler handles HTTP requests for notifications.
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// HandleCreate handles POST /api/v1/notifications requests (admin only,
// enforced by the route group).
func (h *NotificationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	n, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMessageRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, n)
}

// HandleList handles GET /api/v1/notifications requests, returning the
// caller's notifications.
func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	skip, limit := pagination(r)

	notifications, err := h.service.ListForUser(r.Context(), user.ID, skip, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}

// HandleDelete handles DELETE /api/v1/notifications/{notification_id}
// requests. Users can delete their own notifications; admins can delete
// any.
func (h *NotificationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, valid := pathID(r, "notification_id")
	if !valid {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid notification id"))
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, user.IsAdmin, id); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "notification deleted"})
}
