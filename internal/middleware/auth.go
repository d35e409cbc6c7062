package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fittrack/internal/config"
	"fittrack/internal/utils"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	emailKey  contextKey = "email"
)

// UserIDFromContext returns the authenticated user's ID set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// EmailFromContext returns the authenticated user's email set by AuthMiddleware.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

// AuthMiddleware gates a handler behind bearer-token authentication.
//
// The token is taken from "Authorization: Bearer <token>". A missing header,
// the literal token "null" (what a browser client sends when its storage is
// empty), or a failed verification all reject with 401. A missing signing
// secret rejects with 500 instead of leaving the request hanging.
func AuthMiddleware(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		// Expect "Bearer <token>": split on space, take the second segment
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
			return
		}

		tokenString := tokenParts[1]
		if tokenString == "null" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "No token provided")
			return
		}

		claims, err := ValidateToken(tokenString, cfg)
		if errors.Is(err, ErrNoSecret) {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Server misconfigured", err.Error())
			return
		}
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, emailKey, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
