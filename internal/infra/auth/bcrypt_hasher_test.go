package auth

import (
	"strings"
	"testing"

	"blog/internal/domain/service"
	"blog/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("asdfgqwert")
	require.NoError(t, err)
	assert.NotEqual(t, "asdfgqwert", hash)

	assert.True(t, hasher.Check("asdfgqwert", hash))
	assert.False(t, hasher.Check("asdfgqwerT", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same")
	require.NoError(t, err)
	second, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_CheckAgainstPlaintextValue(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	// A record written under the plaintext scheme never matches.
	assert.False(t, hasher.Check("asdfgqwert", "asdfgqwert"))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	hasher, ok := NewBcryptHasher(1).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 80))
	assert.True(t, errors.Is(err, service.ErrPasswordTooLong))

	// 72 bytes is still accepted.
	hash, err := hasher.Hash(strings.Repeat("a", 72))
	require.NoError(t, err)
	assert.True(t, hasher.Check(strings.Repeat("a", 72), hash))
}
