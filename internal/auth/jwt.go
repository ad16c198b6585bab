package auth

import (
	"errors"
	"time"

	"namedesk_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in the session token. A session is a single
// opaque bearer token; there is no refresh rotation.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token carries the admin flag.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// GenerateToken issues an HS256 token for the user, expiring after the
// configured TTL (24h by default).
func GenerateToken(userID, role string) (string, error) {
	cfg := config.GetConfig()
	if cfg.JWT.Secret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	ttl := time.Duration(cfg.JWT.TTL) * time.Hour
	now := time.Now()

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
