package api

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access credential claims issued by the backend.
type Claims struct {
	TokenType string `json:"token_type,omitempty"`
	UserID    any    `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the access credential without verifying it; for display only.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
