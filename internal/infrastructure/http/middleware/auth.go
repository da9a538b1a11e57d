package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
)

// AuthValidator validates the bearer token and sets the user ID in
// context (see SubjectFromContext).
type AuthValidator struct {
	issuer ports.TokenIssuer
}

func NewAuthValidator(issuer ports.TokenIssuer) *AuthValidator {
	return &AuthValidator{issuer: issuer}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid authorization")
			return
		}
		tokenString := strings.TrimPrefix(auth, "Bearer ")
		userID, err := m.issuer.Decode(tokenString)
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "invalid_token", "invalid token")
			return
		}
		ctx := WithSubject(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeErr(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}
