package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/auth"
	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	profilesvc "github.com/yosefin19/sinac-turismo-api/internal/application/profile"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/middleware"
)

// UserHandler handles account endpoints: login, registration, password
// reset and the user CRUD.
type UserHandler struct {
	register *auth.Register
	login    *auth.Login
	reset    *auth.ResetPassword
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	profiles *profilesvc.Service
	validate *validator.Validate
	log      zerolog.Logger
}

func NewUserHandler(register *auth.Register, login *auth.Login, reset *auth.ResetPassword, users ports.UserRepository, hasher ports.PasswordHasher, profiles *profilesvc.Service, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		register: register,
		login:    login,
		reset:    reset,
		users:    users,
		hasher:   hasher,
		profiles: profiles,
		validate: validator.New(),
		log:      log,
	}
}

// UserResponse is the JSON shape for user rows (no password hash).
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Admin: u.Admin}
}

// Login verifies credentials and returns a bearer token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:    SanitizeEmail(body.Email),
		Password: SanitizePassword(body.Password),
	})
	if err != nil {
		AuditLog(h.log, r, "login", 0, false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "login", result.User.ID, true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]string{
		"token":      result.Token,
		"token_type": "bearer",
	})
}

// Add registers a new account.
func (h *UserHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,min=6,max=128"`
		Admin    bool   `json:"admin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	user, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Email:    SanitizeEmail(body.Email),
		Password: SanitizePassword(body.Password),
		Admin:    body.Admin,
	})
	if err != nil {
		AuditLog(h.log, r, "register", 0, false, err.Error())
		writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "register", user.ID, true, "")
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// FindUser looks an account up by email and returns its profile.
func (h *UserHandler) FindUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email" validate:"required,email,max=254"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	user, err := h.users.GetByEmail(r.Context(), SanitizeEmail(body.Email))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if user == nil {
		writeErr(w, http.StatusNotFound, "", "user not found")
		return
	}
	p, err := h.profiles.GetByUser(r.Context(), user.ID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// ResetPassword replaces the account password with a generated one and
// emails it to the user.
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email" validate:"required,email,max=254"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	if err := h.reset.Execute(r.Context(), email); err != nil {
		AuditLog(h.log, r, "reset_password", 0, false, err.Error())
		writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "reset_password", 0, true, "")
	writeJSON(w, http.StatusOK, map[string]string{"status": "new password sent"})
}

// List returns every registered user. Admin only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, items)
}

// Me returns the authenticated account.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if user == nil {
		writeErr(w, http.StatusNotFound, "", "user not found")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// GetByID returns a user by id. Admin only.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid user id")
		return
	}
	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if user == nil {
		writeErr(w, http.StatusNotFound, "", "user not found")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

type updateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Password string `json:"password" validate:"omitempty,max=128"`
	Admin    *bool  `json:"admin"`
}

// applyUpdate writes the non-empty fields onto the user row. The admin
// flag only moves when allowAdmin is set, so a user cannot promote
// themselves through the self-service route.
func (h *UserHandler) applyUpdate(w http.ResponseWriter, r *http.Request, userID int64, allowAdmin bool) {
	var body updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if user == nil {
		writeErr(w, http.StatusNotFound, "", "user not found")
		return
	}
	if body.Email != "" {
		user.Email = SanitizeEmail(body.Email)
	}
	if body.Password != "" {
		hash, err := h.hasher.Hash(SanitizePassword(body.Password))
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		user.PasswordHash = hash
	}
	if allowAdmin && body.Admin != nil {
		user.Admin = *body.Admin
	}
	if err := h.users.Update(r.Context(), user); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateSelf updates the authenticated account.
func (h *UserHandler) UpdateSelf(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	h.applyUpdate(w, r, userID, false)
}

// UpdateByID updates any account. Admin only.
func (h *UserHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid user id")
		return
	}
	h.applyUpdate(w, r, id, true)
}

// DeleteSelf removes the authenticated account.
func (h *UserHandler) DeleteSelf(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	h.deleteUser(w, r, userID)
}

// DeleteByID removes any account. Admin only.
func (h *UserHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid user id")
		return
	}
	h.deleteUser(w, r, id)
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request, id int64) {
	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if user == nil {
		writeErr(w, http.StatusNotFound, "", "user not found")
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "delete_user", id, true, "")
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
