package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aaronlopez/review-board-be/internal/apperror"
	"github.com/aaronlopez/review-board-be/internal/models"
	"github.com/rs/zerolog/log"
)

type contextKey string

// currentUserKey is the context key under which the resolved user is stored.
const currentUserKey = contextKey("currentUser")

// UserLoader resolves a user record from a verified token's user ID. Keeping
// this an interface lets the middleware be tested without a real store.
type UserLoader interface {
	GetUserByID(id string) (models.User, error)
}

// Middleware creates a middleware that resolves the request's identity from
// the Authorization header: it extracts the bearer token, verifies it, loads
// the referenced user and attaches it to the request context. Any failure
// short-circuits the request with 401.
func (s *TokenService) Middleware(users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r.Header.Get("Authorization"))
			if tokenStr == "" {
				unauthorized(w, "missing auth token")
				return
			}

			claims, err := s.ValidateToken(tokenStr)
			if err != nil {
				log.Warn().Err(err).Msg("Rejected invalid auth token")
				unauthorized(w, "invalid auth token")
				return
			}

			// A valid signature is not enough: the account may be gone.
			user, err := users.GetUserByID(claims.UserID)
			if err != nil {
				log.Warn().Err(err).Str("user_id", claims.UserID).Msg("Token references unknown user")
				unauthorized(w, "invalid auth token")
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the user attached to the request context by Middleware.
func CurrentUser(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(currentUserKey).(models.User)
	return user, ok
}

// WithUser returns a copy of ctx carrying the given user, for tests and
// internal callers that bypass the middleware.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter, message string) {
	appErr := apperror.NewAuth(message, nil)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	json.NewEncoder(w).Encode(appErr.ToResponse())
}
