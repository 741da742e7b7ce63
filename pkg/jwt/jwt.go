package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles del painel.
const (
	RoleAdmin       = "admin"
	RoleInstituicao = "instituicao"
)

// Claims incluye los claims estándar JWT más la institución que abrió sesión
// en la API remota. Role permite al middleware RBAC decidir sin consultar la API.
// SessionID identifica la sesión remota para la que se emitió el token.
type Claims struct {
	jwt.RegisteredClaims
	UserID        string `json:"user_id"`
	SessionID     string `json:"sid,omitempty"`
	InstitutionID int64  `json:"institution_id"`
	Role          string `json:"role"` // "admin" | "instituicao"
}

// Generate genera un token JWT firmado.
func Generate(secret, userID, sessionID string, institutionID int64, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:        userID,
		SessionID:     sessionID,
		InstitutionID: institutionID,
		Role:          role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
