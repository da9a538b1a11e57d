package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/catalog"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/middleware"
)

// ReviewHandler handles per-destination reviews and their single photo.
type ReviewHandler struct {
	reviews  *catalog.ReviewService
	validate *validator.Validate
	log      zerolog.Logger
}

func NewReviewHandler(reviews *catalog.ReviewService, log zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, validate: validator.New(), log: log}
}

var spanishMonths = [12]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// formatReviewDate renders dates the way the mobile client shows them,
// e.g. "02 de ene. 2026".
func formatReviewDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s. %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// ReviewResponse is the JSON shape for reviews; Date carries the
// display-formatted Spanish date.
type ReviewResponse struct {
	ID                   int64  `json:"id"`
	Title                string `json:"title"`
	Text                 string `json:"text"`
	Date                 string `json:"date"`
	Calification         int    `json:"calification"`
	ImagePath            string `json:"image_path"`
	UserID               int64  `json:"user_id"`
	TouristDestinationID int64  `json:"tourist_destination_id"`
}

func toReviewResponse(rv *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:                   rv.ID,
		Title:                rv.Title,
		Text:                 rv.Text,
		Date:                 formatReviewDate(rv.Date),
		Calification:         rv.Calification,
		ImagePath:            rv.ImagePath,
		UserID:               rv.UserID,
		TouristDestinationID: rv.TouristDestinationID,
	}
}

type reviewRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Text         string `json:"text"`
	Calification int    `json:"calification" validate:"min=0,max=5"`
	ImagePath    string `json:"image_path"`
}

func (h *ReviewHandler) subjectAndDestination(w http.ResponseWriter, r *http.Request) (userID, destinationID int64, ok bool) {
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

// GetOwn returns the authenticated user's review of a destination.
func (h *ReviewHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID, destinationID, ok := h.subjectAndDestination(w, r)
	if !ok {
		return
	}
	review, err := h.reviews.GetByUser(r.Context(), destinationID, userID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponse(review))
}

// ListByDestination returns a destination's reviews, newest first.
func (h *ReviewHandler) ListByDestination(w http.ResponseWriter, r *http.Request) {
	destinationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid tourist destination id")
		return
	}
	reviews, err := h.reviews.ListByDestination(r.Context(), destinationID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		items = append(items, toReviewResponse(rv))
	}
	writeJSON(w, http.StatusOK, items)
}

// Add stores the authenticated user's review of a destination.
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, destinationID, ok := h.subjectAndDestination(w, r)
	if !ok {
		return
	}
	var body reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	review := &domain.Review{
		Title:                body.Title,
		Text:                 body.Text,
		Calification:         body.Calification,
		ImagePath:            body.ImagePath,
		UserID:               userID,
		TouristDestinationID: destinationID,
	}
	if err := h.reviews.Add(r.Context(), review); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewResponse(review))
}

// Update rewrites the authenticated user's review; the date moves to now.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, destinationID, ok := h.subjectAndDestination(w, r)
	if !ok {
		return
	}
	var body reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	review, err := h.reviews.Update(r.Context(), destinationID, userID, body.Title, body.Text, body.Calification, body.ImagePath)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponse(review))
}

// AddImage stores the review photo and returns its path.
func (h *ReviewHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	userID, destinationID, ok := h.subjectAndDestination(w, r)
	if !ok {
		return
	}
	upload, found, err := formUpload(r, "image")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid multipart body")
		return
	}
	if !found {
		writeErr(w, http.StatusBadRequest, "", "image file required")
		return
	}
	path, err := h.reviews.AddImage(r.Context(), destinationID, userID, upload)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

// Delete removes the authenticated user's review and its photo directory.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, found := middleware.SubjectFromContext(r.Context())
	if !found {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	reviewID, err := strconv.ParseInt(chi.URLParam(r, "review_id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid review id")
		return
	}
	if err := h.reviews.Delete(r.Context(), reviewID, userID); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
