package auth

import (
	"golang.org/x/crypto/bcrypt"

	"blog/internal/domain/service"
	"blog/internal/errors"
)

// bcryptHasher stores salted bcrypt hashes. Selected with auth.passwordScheme: bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt-backed PasswordMatcher. Costs outside
// bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) service.PasswordMatcher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash rejects passwords over bcrypt's 72-byte input limit with
// service.ErrPasswordTooLong.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", service.ErrPasswordTooLong
	}
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
