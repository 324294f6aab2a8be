package mock

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"time"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

var errTokenNotValid = errors.New("token not valid")

// createJWT signs a token of the given type for userID.
func (b *Backend) createJWT(userID int64, tokenType string) (string, error) {
	now := time.Now()
	ttl, gen := b.AccessTTL, b.accessGen.Load()
	if tokenType == refreshTokenType {
		ttl, gen = b.RefreshTTL, b.refreshGen.Load()
	}
	claims := jwt.MapClaims{
		"token_type": tokenType,
		"user_id":    userID,
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		"gen":        gen,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.secret)
}

// verifyJWT checks signature, expiry, type and generation.
func (b *Backend) verifyJWT(tokenString, tokenType string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return b.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims["token_type"] != tokenType {
		return nil, errTokenNotValid
	}
	current := b.accessGen.Load()
	if tokenType == refreshTokenType {
		current = b.refreshGen.Load()
	}
	gen, _ := claims["gen"].(float64)
	if int64(gen) < current {
		return nil, errTokenNotValid
	}
	return claims, nil
}
