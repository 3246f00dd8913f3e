package middleware

import (
	"context"

	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
)

type contextKey string

const ctxSessionUser contextKey = "session_user"

// SessionUserFromContext returns the authenticated user seeded by Auth, or nil.
func SessionUserFromContext(ctx context.Context) *models.User {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxSessionUser).(*models.User); ok {
		return v
	}
	return nil
}

// WithSessionUser injects the authenticated user into the context.
func WithSessionUser(ctx context.Context, user *models.User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionUser, user)
}
