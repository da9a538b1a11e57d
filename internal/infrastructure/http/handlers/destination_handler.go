package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/catalog"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/middleware"
)

// DestinationHandler handles tourist destination CRUD, photo batches,
// the season query and the per-user recommendations.
type DestinationHandler struct {
	destinations *catalog.DestinationService
	validate     *validator.Validate
	log          zerolog.Logger
}

func NewDestinationHandler(destinations *catalog.DestinationService, log zerolog.Logger) *DestinationHandler {
	return &DestinationHandler{destinations: destinations, validate: validator.New(), log: log}
}

// DestinationResponse is the JSON shape for tourist destinations.
type DestinationResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Schedule           string  `json:"schedule"`
	Fare               string  `json:"fare"`
	Contact            string  `json:"contact"`
	Recommendation     string  `json:"recommendation"`
	Difficulty         int     `json:"difficulty"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Hikes              string  `json:"hikes"`
	PhotosPath         string  `json:"photos_path"`
	IsBeach            bool    `json:"is_beach"`
	IsForest           bool    `json:"is_forest"`
	IsVolcano          bool    `json:"is_volcano"`
	IsMountain         bool    `json:"is_mountain"`
	StartSeason        int     `json:"start_season"`
	EndSeason          int     `json:"end_season"`
	ConservationAreaID int64   `json:"conservation_area_id"`
}

func toDestinationResponse(d *domain.TouristDestination) DestinationResponse {
	return DestinationResponse{
		ID:                 d.ID,
		Name:               d.Name,
		Description:        d.Description,
		Schedule:           d.Schedule,
		Fare:               d.Fare,
		Contact:            d.Contact,
		Recommendation:     d.Recommendation,
		Difficulty:         d.Difficulty,
		Latitude:           d.Latitude,
		Longitude:          d.Longitude,
		Hikes:              d.Hikes,
		PhotosPath:         d.PhotosPath.String(),
		IsBeach:            d.IsBeach,
		IsForest:           d.IsForest,
		IsVolcano:          d.IsVolcano,
		IsMountain:         d.IsMountain,
		StartSeason:        d.StartSeason,
		EndSeason:          d.EndSeason,
		ConservationAreaID: d.ConservationAreaID,
	}
}

func toDestinationList(list []*domain.TouristDestination) []DestinationResponse {
	items := make([]DestinationResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toDestinationResponse(d))
	}
	return items
}

type destinationRequest struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Description        string  `json:"description"`
	Schedule           string  `json:"schedule"`
	Fare               string  `json:"fare"`
	Contact            string  `json:"contact"`
	Recommendation     string  `json:"recommendation"`
	Difficulty         int     `json:"difficulty" validate:"min=0,max=5"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Hikes              string  `json:"hikes"`
	IsBeach            bool    `json:"is_beach"`
	IsForest           bool    `json:"is_forest"`
	IsVolcano          bool    `json:"is_volcano"`
	IsMountain         bool    `json:"is_mountain"`
	StartSeason        int     `json:"start_season" validate:"min=0,max=12"`
	EndSeason          int     `json:"end_season" validate:"min=0,max=12"`
	ConservationAreaID int64   `json:"conservation_area_id"`
}

func (h *DestinationHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*destinationRequest, bool) {
	var body destinationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return nil, false
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return nil, false
	}
	return &body, true
}

func (body *destinationRequest) apply(d *domain.TouristDestination) {
	d.Name = body.Name
	d.Description = body.Description
	d.Schedule = body.Schedule
	d.Fare = body.Fare
	d.Contact = body.Contact
	d.Recommendation = body.Recommendation
	d.Difficulty = body.Difficulty
	d.Latitude = body.Latitude
	d.Longitude = body.Longitude
	d.Hikes = body.Hikes
	d.IsBeach = body.IsBeach
	d.IsForest = body.IsForest
	d.IsVolcano = body.IsVolcano
	d.IsMountain = body.IsMountain
	d.StartSeason = body.StartSeason
	d.EndSeason = body.EndSeason
	d.ConservationAreaID = body.ConservationAreaID
}

func destinationIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid tourist destination id")
		return 0, false
	}
	return id, true
}

// Add creates a tourist destination. Admin only.
func (h *DestinationHandler) Add(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	var dest domain.TouristDestination
	body.apply(&dest)
	if err := h.destinations.Create(r.Context(), &dest); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDestinationResponse(&dest))
}

// List returns every tourist destination.
func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.destinations.List(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDestinationList(list))
}

// Get returns a tourist destination by id.
func (h *DestinationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := destinationIDParam(w, r)
	if !ok {
		return
	}
	dest, err := h.destinations.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDestinationResponse(dest))
}

// Update rewrites the descriptive fields; the stored photo set is kept.
// Admin only.
func (h *DestinationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := destinationIDParam(w, r)
	if !ok {
		return
	}
	dest, err := h.destinations.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	body, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	body.apply(dest)
	if err := h.destinations.Update(r.Context(), dest); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDestinationResponse(dest))
}

// AddPhotos stores the first photo batch. Admin only.
func (h *DestinationHandler) AddPhotos(w http.ResponseWriter, r *http.Request) {
	id, ok := destinationIDParam(w, r)
	if !ok {
		return
	}
	uploads, err := formUploads(r, "photos")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid multipart body")
		return
	}
	dest, err := h.destinations.AddPhotos(r.Context(), id, uploads)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDestinationResponse(dest))
}

// UpdatePhotos reconciles the submitted batch against the stored set.
// Admin only.
func (h *DestinationHandler) UpdatePhotos(w http.ResponseWriter, r *http.Request) {
	id, ok := destinationIDParam(w, r)
	if !ok {
		return
	}
	uploads, err := formUploads(r, "photos")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid multipart body")
		return
	}
	dest, err := h.destinations.UpdatePhotos(r.Context(), id, uploads)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDestinationResponse(dest))
}

// Delete removes a destination and its media. Admin only.
func (h *DestinationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := destinationIDParam(w, r)
	if !ok {
		return
	}
	if err := h.destinations.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Season returns the destinations in season for the given month (1..12).
func (h *DestinationHandler) Season(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid month")
		return
	}
	list, err := h.destinations.Season(r.Context(), month)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDestinationList(list))
}

// Recommendation suggests destinations from the user's favorite
// categories, falling back to the current season.
func (h *DestinationHandler) Recommendation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	list, err := h.destinations.Recommend(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDestinationList(list))
}
