package utils

import (
	"errors" // Token validation errors
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library

	"moneywise/internal/domain" // View type
)

// ErrInvalidToken is returned for malformed, expired or tampered tokens
var ErrInvalidToken = errors.New("invalid session token")

// Claims carried by a session token. The token is a handle to an in-memory
// session and the view the caller is on; it is not a credential.
type Claims struct {
	SessionID            string      `json:"session_id"` // Session the token points at
	View                 domain.View `json:"view"`       // child or parent
	jwt.RegisteredClaims             // Standard JWT claims
}

// GenerateSessionToken signs a token for a session and view
func GenerateSessionToken(sessionID string, view domain.View, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		View:      view,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   sessionID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken parses and validates a session token string
func ParseSessionToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" || !claims.View.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
