package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	profilesvc "github.com/yosefin19/sinac-turismo-api/internal/application/profile"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/middleware"
)

// ProfileHandler handles profile CRUD and the fixed-name profile/cover
// photo endpoints.
type ProfileHandler struct {
	profiles *profilesvc.Service
	validate *validator.Validate
	log      zerolog.Logger
}

func NewProfileHandler(profiles *profilesvc.Service, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, validate: validator.New(), log: log}
}

// ProfileResponse is the JSON shape for profile rows.
type ProfileResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	ProfilePhotoPath string `json:"profile_photo_path"`
	CoverPhotoPath   string `json:"cover_photo_path"`
	UserID           int64  `json:"user_id"`
}

func toProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:               p.ID,
		Name:             p.Name,
		Phone:            p.Phone,
		ProfilePhotoPath: p.ProfilePhotoPath,
		CoverPhotoPath:   p.CoverPhotoPath,
		UserID:           p.UserID,
	}
}

// ownProfile resolves the authenticated user's profile.
func (h *ProfileHandler) ownProfile(w http.ResponseWriter, r *http.Request) (*domain.Profile, bool) {
	userID, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return nil, false
	}
	p, err := h.profiles.GetByUser(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, err)
		return nil, false
	}
	return p, true
}

// List returns every profile. Admin only.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.List(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, toProfileResponse(p))
	}
	writeJSON(w, http.StatusOK, items)
}

// Me returns the authenticated user's profile.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := h.ownProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// GetByID returns a profile by id. Admin only.
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid profile id")
		return
	}
	p, err := h.profiles.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// GetByUser returns the profile attached to a user account.
func (h *ProfileHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid user id")
		return
	}
	p, err := h.profiles.GetByUser(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Add creates a profile for a user account.
func (h *ProfileHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name   string `json:"name" validate:"required,max=200"`
		Phone  string `json:"phone" validate:"max=30"`
		UserID int64  `json:"user_id" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	p := &domain.Profile{Name: body.Name, Phone: body.Phone, UserID: body.UserID}
	if err := h.profiles.Create(r.Context(), p); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(p))
}

func (h *ProfileHandler) applyUpdate(w http.ResponseWriter, r *http.Request, p *domain.Profile) {
	var body struct {
		Name  string `json:"name" validate:"omitempty,max=200"`
		Phone string `json:"phone" validate:"omitempty,max=30"`
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
		p.Name = body.Name
	}
	if body.Phone != "" {
		p.Phone = body.Phone
	}
	if err := h.profiles.Update(r.Context(), p); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// UpdateSelf updates the authenticated user's profile.
func (h *ProfileHandler) UpdateSelf(w http.ResponseWriter, r *http.Request) {
	p, ok := h.ownProfile(w, r)
	if !ok {
		return
	}
	h.applyUpdate(w, r, p)
}

// UpdateByID updates any profile. Admin only.
func (h *ProfileHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid profile id")
		return
	}
	p, err := h.profiles.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	h.applyUpdate(w, r, p)
}

// DeleteSelf removes the authenticated user's profile and its media.
func (h *ProfileHandler) DeleteSelf(w http.ResponseWriter, r *http.Request) {
	p, ok := h.ownProfile(w, r)
	if !ok {
		return
	}
	if err := h.profiles.Delete(r.Context(), p.ID); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// DeleteByID removes any profile. Admin only.
func (h *ProfileHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid profile id")
		return
	}
	if err := h.profiles.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// GetPhoto streams the profile or cover photo of the authenticated user.
func (h *ProfileHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	p, ok := h.ownProfile(w, r)
	if !ok {
		return
	}
	h.servePhoto(w, r, chi.URLParam(r, "type"), p.ID)
}

func (h *ProfileHandler) servePhoto(w http.ResponseWriter, r *http.Request, kind string, profileID int64) {
	data, err := h.profiles.GetPhoto(r.Context(), kind, profileID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// AddPhoto stores the authenticated user's profile or cover photo.
func (h *ProfileHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	p, ok := h.ownProfile(w, r)
	if !ok {
		return
	}
	h.storePhoto(w, r, chi.URLParam(r, "type"), p.ID)
}

// AddPhotoByID stores a photo on any profile. Admin only.
func (h *ProfileHandler) AddPhotoByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid profile id")
		return
	}
	h.storePhoto(w, r, chi.URLParam(r, "type"), id)
}

func (h *ProfileHandler) storePhoto(w http.ResponseWriter, r *http.Request, kind string, profileID int64) {
	upload, ok, err := formUpload(r, "image")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid multipart body")
		return
	}
	if !ok {
		writeErr(w, http.StatusBadRequest, "", "image file required")
		return
	}
	stored, err := h.profiles.AddPhoto(r.Context(), kind, profileID, upload)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": stored})
}

// DeletePhoto removes the authenticated user's profile or cover photo.
func (h *ProfileHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	p, ok := h.ownProfile(w, r)
	if !ok {
		return
	}
	h.removePhoto(w, r, chi.URLParam(r, "type"), p.ID)
}

// DeletePhotoByID removes a photo from any profile. Admin only.
func (h *ProfileHandler) DeletePhotoByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid profile id")
		return
	}
	h.removePhoto(w, r, chi.URLParam(r, "type"), id)
}

func (h *ProfileHandler) removePhoto(w http.ResponseWriter, r *http.Request, kind string, profileID int64) {
	if err := h.profiles.DeletePhoto(r.Context(), kind, profileID); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"profile_id": profileID})
}
