package auth

import (
	"crypto/sha256"
	"crypto/subtle"

	"blog/internal/domain/service"
)

// plaintextMatcher keeps passwords exactly as supplied, which is how existing
// author records are stored. Comparison runs in constant time over digests so
// neither content nor length leaks through timing.
type plaintextMatcher struct{}

// NewPlaintextMatcher returns the default PasswordMatcher.
func NewPlaintextMatcher() service.PasswordMatcher {
	return plaintextMatcher{}
}

func (plaintextMatcher) Hash(password string) (string, error) {
	return password, nil
}

func (plaintextMatcher) Check(password, stored string) bool {
	a := sha256.Sum256([]byte(password))
	b := sha256.Sum256([]byte(stored))

	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
