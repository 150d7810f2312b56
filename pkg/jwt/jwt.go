package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos de la sesión.
// ID (jti) es el identificador de sesión; Role permite al middleware decidir sin consultar el store.
type Claims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Role    string `json:"role"` // "dealer" | "guest" | "admin"
	IsGuest bool   `json:"is_guest"`
}

// ErrExpired token con firma válida pero vencido. ParseAt lo devuelve junto con los claims
// para que el llamador pueda limpiar la sesión referenciada.
var ErrExpired = errors.New("jwt: token expirado")

// SessionID devuelve el jti del token.
func (c *Claims) SessionID() string { return c.ID }

// Generate genera un token firmado para la sesión. expiresAt coincide con la expiración de la sesión.
func Generate(secret, issuer, sessionID, email, role string, isGuest bool, expiresAt time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if sessionID == "" {
		return "", fmt.Errorf("jwt: sessionID vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email:   email,
		Role:    role,
		IsGuest: isGuest,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	return ParseAt(secret, tokenString, time.Now)
}

// ParseAt igual que Parse pero valida la expiración contra now().
func ParseAt(secret, tokenString string, now func() time.Time) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && token != nil {
			if claims, ok := token.Claims.(*Claims); ok && claims.ID != "" {
				return claims, ErrExpired
			}
		}
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("jwt: token sin sesión")
	}
	return claims, nil
}
