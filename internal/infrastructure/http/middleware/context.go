package middleware

import (
	"context"

	"github.com/yosefin19/sinac-turismo-api/internal/domain"
)

type contextKey string

const (
	subjectContextKey contextKey = "subject"
	userContextKey    contextKey = "user"
)

// WithSubject injects the authenticated user ID into the context.
func WithSubject(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, subjectContextKey, userID)
}

// SubjectFromContext returns the authenticated user ID, or false when
// the request was not authenticated.
func SubjectFromContext(ctx context.Context) (int64, bool) {
	v := ctx.Value(subjectContextKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// WithUser injects the loaded user row into the context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the user from the context, or nil.
func UserFromContext(ctx context.Context) *domain.User {
	v := ctx.Value(userContextKey)
	if v == nil {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
