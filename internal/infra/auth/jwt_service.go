// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"
)

// jwtService implements service.TokenService with HS256-signed JWTs.
type jwtService struct {
	secret []byte // Signing key, read-only after construction.
	ttl    time.Duration
}

// NewJWTService builds the token service from the configured signing key.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    service.AccessTokenTTL,
	}, nil
}

// Issue creates an access token for authorID valid until now + ttl.
func (s *jwtService) Issue(authorID int64, now time.Time) (string, error) {
	if authorID <= 0 {
		return "", errors.Errorf("cannot issue token for author id %d", authorID)
	}

	claims := service.Claims{
		AuthorID: authorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify decodes tokenString as of now. Any failure is reported as ErrInvalidToken;
// the underlying cause only appears in the wrapped message for logs.
func (s *jwtService) Verify(tokenString string, now time.Time) (int64, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return 0, errors.Wrapf(domainerrors.ErrInvalidToken, "verify token: %v", err)
	}

	if !token.Valid || claims.AuthorID <= 0 {
		return 0, domainerrors.ErrInvalidToken.WrapMessage("verify token: missing author id")
	}

	return claims.AuthorID, nil
}
