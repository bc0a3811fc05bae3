package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is the fixed lifetime of an access token.
const AccessTokenTTL = 30 * time.Minute

// Claims is the signed body of an access token.
type Claims struct {
	AuthorID int64 `json:"author_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited identity tokens.
// Validity depends only on the signature and the clock; nothing is stored server side.
type TokenService interface {
	// Issue signs a token for authorID that expires at now + AccessTokenTTL.
	Issue(authorID int64, now time.Time) (string, error)

	// Verify returns the embedded author id when the signature checks out and
	// now is before the expiry. Every failure is domainerrors.ErrInvalidToken.
	Verify(tokenString string, now time.Time) (int64, error)
}
