package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/api/responses"
	pkgAuth "github.com/rdelacruz/stocktrail-backend/pkg/auth"
	"github.com/rdelacruz/stocktrail-backend/pkg/config"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/logger"
)

// SessionUserResolver loads the live user record behind a session token.
type SessionUserResolver interface {
	ResolveSessionUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// Auth validates a bearer token and seeds the request context with the live
// user record. Tokens carry only the user id, so role and store assignment are
// read from the database on every request and role changes take effect
// immediately.
func Auth(cfg config.JWTConfig, resolver SessionUserResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseSessionToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			if resolver == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user resolver unavailable"))
				return
			}

			user, err := resolver.ResolveSessionUser(r.Context(), claims.UserID)
			if err != nil {
				if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
					// a valid token for a deleted account is no longer a session
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user not found"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve session user"))
				return
			}

			ctx := WithSessionUser(r.Context(), user)

			if logg != nil {
				fields := map[string]any{
					"user_id":    user.ID.String(),
					"actor_role": string(user.Role),
				}
				if user.StoreID != nil {
					fields["store_id"] = user.StoreID.String()
				}
				ctx = logg.WithFields(ctx, fields)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
