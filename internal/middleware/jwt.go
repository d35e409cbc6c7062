package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fittrack/internal/config"
)

// ErrNoSecret is returned when token signing or verification is attempted
// without a configured signing secret.
var ErrNoSecret = errors.New("signing secret is not configured")

// JWTClaims represents the claims in the JWT token. The JSON names match
// the payload the clients expect: {userId, email}.
type JWTClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the given user, expiring after the
// configured TTL (one hour by default).
func GenerateToken(userID, email string, cfg *config.JWTConfig) (string, error) {
	if cfg.Secret == "" {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken verifies signature and expiry and returns the claims.
func ValidateToken(tokenString string, cfg *config.JWTConfig) (*JWTClaims, error) {
	if cfg.Secret == "" {
		return nil, ErrNoSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}
	return claims, nil
}
