// Package auth mints and checks the HS256 bearer tokens that protect
// the administrative endpoints.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/radblock/gifgate/internal/common"
)

// Claims embeds the registered claims plus the caller's role.
type Claims struct {
	jwt.RegisteredClaims
	Role string
}

// RoleAdmin is the only role the server currently recognises.
const RoleAdmin = "admin"

func GenerateToken(role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Role: role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetRoleFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Role, nil
}
