package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	profilesvc "github.com/yosefin19/sinac-turismo-api/internal/application/profile"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/middleware"
)

// GalleryHandler handles the per-profile photo gallery.
type GalleryHandler struct {
	profiles *profilesvc.Service
	validate *validator.Validate
	log      zerolog.Logger
}

func NewGalleryHandler(profiles *profilesvc.Service, log zerolog.Logger) *GalleryHandler {
	return &GalleryHandler{profiles: profiles, validate: validator.New(), log: log}
}

// GalleryResponse is the JSON shape for a gallery: the photo list is the
// comma-joined path string the mobile client expects.
type GalleryResponse struct {
	ProfileID  int64  `json:"profile_id"`
	PhotosPath string `json:"photos_path"`
}

func toGalleryResponse(profileID int64, set domain.PhotoSet) GalleryResponse {
	return GalleryResponse{ProfileID: profileID, PhotosPath: set.String()}
}

func (h *GalleryHandler) ownProfileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return 0, false
	}
	p, err := h.profiles.GetByUser(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, err)
		return 0, false
	}
	return p.ID, true
}

// Get returns the authenticated user's gallery.
func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	g, err := h.profiles.Gallery(r.Context(), profileID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGalleryResponse(g.ProfileID, g.PhotosPath))
}

// Add creates an empty gallery for a profile.
func (h *GalleryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProfileID int64 `json:"profile_id" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	g, err := h.profiles.CreateGallery(r.Context(), body.ProfileID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGalleryResponse(g.ProfileID, g.PhotosPath))
}

// AddPhotos appends uploaded photos to the authenticated user's gallery.
func (h *GalleryHandler) AddPhotos(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	uploads, err := formUploads(r, "photos")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid multipart body")
		return
	}
	if len(uploads) == 0 {
		writeErr(w, http.StatusBadRequest, "", "photos files required")
		return
	}
	set, err := h.profiles.AddGalleryPhotos(r.Context(), profileID, uploads)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGalleryResponse(profileID, set))
}

// DeletePhoto removes one gallery photo by file name (?name=).
func (h *GalleryHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		writeErr(w, http.StatusBadRequest, "", "name query parameter required")
		return
	}
	set, err := h.profiles.DeleteGalleryPhoto(r.Context(), profileID, name)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGalleryResponse(profileID, set))
}
