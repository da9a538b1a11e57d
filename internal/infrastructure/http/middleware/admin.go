package middleware

import (
	"net/http"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
)

// AdminGuard loads the authenticated user and rejects requests from
// non-administrators with 403. Must run after AuthValidator.
type AdminGuard struct {
	users ports.UserRepository
}

func NewAdminGuard(users ports.UserRepository) *AdminGuard {
	return &AdminGuard{users: users}
}

func (m *AdminGuard) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := SubjectFromContext(r.Context())
		if !ok {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid authorization")
			return
		}
		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, "internal_error", "failed to load user")
			return
		}
		if user == nil || !user.Admin {
			writeErr(w, http.StatusForbidden, "forbidden", "administrator privileges required")
			return
		}
		ctx := WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
