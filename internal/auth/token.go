package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned by Verify for any credential that cannot be
// accepted: malformed, tampered, signed with a different key, or expired.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the custom claims embedded in an identity token. Both the
// stable user ID and the display nickname are carried so that callers can
// authorize on the ID without a second lookup.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256-signed identity tokens. The signing
// secret is loaded once at startup and read-only for the process lifetime.
// A zero TTL issues non-expiring tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given secret and token TTL
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the user's ID and nickname
func (i *TokenIssuer) Issue(userID uint, nickname string) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Nickname: nickname,
	}
	if i.ttl > 0 {
		now := time.Now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks the token's structure and signature and returns its claims.
// Any rejection surfaces as ErrInvalidToken; callers need no finer detail.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
