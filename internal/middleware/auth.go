// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AbuAli85/contract-management-backend/internal/auth"
	"github.com/google/uuid"
)

type contextKey string

const (
	userIDKey    contextKey = "cm_user_id"
	userEmailKey contextKey = "cm_user_email"
)

// AuthMiddleware validates the session token (cookie or bearer) and stashes
// the user identity in the request context. Requests without a valid session
// get 401 with the fixed {"error":"Unauthorized"} body.
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := auth.TokenFromRequest(r)
			if tokenString == "" {
				unauthorized(w)
				return
			}

			claims, err := tokenManager.Validate(tokenString)
			if err != nil {
				unauthorized(w)
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user's id and email.
func UserFromContext(ctx context.Context) (uuid.UUID, string, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	email, _ := ctx.Value(userEmailKey).(string)
	return userID, email, true
}

// ContextWithUser is used by handler tests to simulate an authenticated
// request without running the middleware.
func ContextWithUser(ctx context.Context, userID uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userEmailKey, email)
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
