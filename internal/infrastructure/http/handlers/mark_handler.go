package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/catalog"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/middleware"
)

// MarkHandler covers one per-user destination mark kind (favorites or
// visited); wire one instance per kind.
type MarkHandler struct {
	marks *catalog.MarkService
	log   zerolog.Logger
}

func NewMarkHandler(marks *catalog.MarkService, log zerolog.Logger) *MarkHandler {
	return &MarkHandler{marks: marks, log: log}
}

func (h *MarkHandler) subjectAndID(w http.ResponseWriter, r *http.Request) (userID, destinationID int64, ok bool) {
	userID, found := middleware.SubjectFromContext(r.Context())
	if !found {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return 0, 0, false
	}
	destinationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid tourist destination id")
		return 0, 0, false
	}
	return userID, destinationID, true
}

// Add marks a destination for the authenticated user.
func (h *MarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, destinationID, ok := h.subjectAndID(w, r)
	if !ok {
		return
	}
	if err := h.marks.Add(r.Context(), userID, destinationID); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"marked": true})
}

// Remove unmarks a destination for the authenticated user.
func (h *MarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, destinationID, ok := h.subjectAndID(w, r)
	if !ok {
		return
	}
	if err := h.marks.Remove(r.Context(), userID, destinationID); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"marked": false})
}

// List returns the authenticated user's marked destinations.
func (h *MarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, found := middleware.SubjectFromContext(r.Context())
	if !found {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	list, err := h.marks.List(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDestinationList(list))
}
