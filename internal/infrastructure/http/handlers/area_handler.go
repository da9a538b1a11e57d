package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/catalog"
	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
)

// AreaHandler handles conservation area CRUD and photo management.
type AreaHandler struct {
	areas    *catalog.AreaService
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAreaHandler(areas *catalog.AreaService, log zerolog.Logger) *AreaHandler {
	return &AreaHandler{areas: areas, validate: validator.New(), log: log}
}

// AreaResponse is the JSON shape for conservation areas. PhotosPath is
// the comma-joined stored path list.
type AreaResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PhotosPath  string `json:"photos_path"`
	RegionPath  string `json:"region_path"`
}

func toAreaResponse(a *domain.ConservationArea) AreaResponse {
	return AreaResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		PhotosPath:  a.PhotosPath.String(),
		RegionPath:  a.RegionPath,
	}
}

func areaIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid conservation area id")
		return 0, false
	}
	return id, true
}

// Add creates a conservation area. Admin only.
func (h *AreaHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name" validate:"required,max=200"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	area := &domain.ConservationArea{Name: body.Name, Description: body.Description}
	if err := h.areas.Create(r.Context(), area); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAreaResponse(area))
}

// List returns every conservation area.
func (h *AreaHandler) List(w http.ResponseWriter, r *http.Request) {
	areas, err := h.areas.List(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]AreaResponse, 0, len(areas))
	for _, a := range areas {
		items = append(items, toAreaResponse(a))
	}
	writeJSON(w, http.StatusOK, items)
}

// Get returns a conservation area by id.
func (h *AreaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := areaIDParam(w, r)
	if !ok {
		return
	}
	area, err := h.areas.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAreaResponse(area))
}

// Update rewrites the descriptive fields. Admin only.
func (h *AreaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := areaIDParam(w, r)
	if !ok {
		return
	}
	area, err := h.areas.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	var body struct {
		Name        string `json:"name" validate:"omitempty,max=200"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	if body.Name != "" {
		area.Name = body.Name
	}
	if body.Description != "" {
		area.Description = body.Description
	}
	if err := h.areas.Update(r.Context(), area); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAreaResponse(area))
}

// parsePhotoBatch reads the photos[] gallery files and the single
// region_photo from the multipart body.
func (h *AreaHandler) parsePhotoBatch(w http.ResponseWriter, r *http.Request) (photos []ports.Upload, region ports.Upload, ok bool) {
	photos, err := formUploads(r, "photos")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid multipart body")
		return nil, ports.Upload{}, false
	}
	region, found, err := formUpload(r, "region_photo")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid multipart body")
		return nil, ports.Upload{}, false
	}
	if !found {
		writeErr(w, http.StatusBadRequest, "", "region_photo file required")
		return nil, ports.Upload{}, false
	}
	return photos, region, true
}

// AddPhotos stores the first photo batch for an area. Admin only.
func (h *AreaHandler) AddPhotos(w http.ResponseWriter, r *http.Request) {
	id, ok := areaIDParam(w, r)
	if !ok {
		return
	}
	photos, region, ok := h.parsePhotoBatch(w, r)
	if !ok {
		return
	}
	area, err := h.areas.AddPhotos(r.Context(), id, photos, region)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAreaResponse(area))
}

// UpdatePhotos reconciles the submitted batch against the stored photo
// set. Admin only.
func (h *AreaHandler) UpdatePhotos(w http.ResponseWriter, r *http.Request) {
	id, ok := areaIDParam(w, r)
	if !ok {
		return
	}
	photos, region, ok := h.parsePhotoBatch(w, r)
	if !ok {
		return
	}
	area, err := h.areas.UpdatePhotos(r.Context(), id, photos, region)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAreaResponse(area))
}

// Delete removes an area and its media. Admin only.
func (h *AreaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := areaIDParam(w, r)
	if !ok {
		return
	}
	if err := h.areas.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
