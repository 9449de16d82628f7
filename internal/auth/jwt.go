package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/salleinventory/salleinventory-golang/internal/models"
)

// tokenTTL: sessions are stateless, so validity is purely signature + expiry.
const tokenTTL = 24 * time.Hour

// jwtSecretKey returns the signing key. It reads JWT_SECRET on every call so
// tests can swap the secret; the dev fallback keeps a fresh checkout working.
func jwtSecretKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("salleinventory-dev-secret-change-me")
}

// Claims carries the identity the client needs without a DB round-trip.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	Nombre string `json:"nombre"`
	jwt.RegisteredClaims
}

// GenerateToken signs a 24-hour session token for the given user.
func GenerateToken(user *models.Usuario) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Rol:    user.Rol,
		Nombre: user.Nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey())
}

// ValidateToken parses and validates a token string. Any tampering, a wrong
// signing method, or expiry fails closed.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecretKey(), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
