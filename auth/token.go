package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried inside a session token. The token binds to
// exactly one username and holds no other mutable state.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens. The secret is process-wide
// configuration, never owned by the services that use the codec.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) TokenCodec {
	return TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Sign mints a bearer token bound to username, expiring after the configured TTL.
func (c TokenCodec) Sign(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "messagely",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses a token string and validates its signature and expiration.
func (c TokenCodec) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
