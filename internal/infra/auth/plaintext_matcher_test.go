package auth

import (
	"io"
	"log/slog"
	"testing"

	"blog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintextMatcher(t *testing.T) {
	matcher := NewPlaintextMatcher()

	stored, err := matcher.Hash("asdfgqwert")
	require.NoError(t, err)
	assert.Equal(t, "asdfgqwert", stored)

	assert.True(t, matcher.Check("asdfgqwert", stored))
	assert.False(t, matcher.Check("asdfgqwer", stored))
	assert.False(t, matcher.Check("", stored))
	assert.True(t, matcher.Check("", ""))
}

func TestNewPasswordMatcher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("default is plaintext", func(t *testing.T) {
		matcher, err := NewPasswordMatcher(&config.Config{}, logger)
		require.NoError(t, err)
		assert.IsType(t, plaintextMatcher{}, matcher)
	})

	t.Run("bcrypt", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{PasswordScheme: "BCRYPT", BcryptCost: 4}}
		matcher, err := NewPasswordMatcher(cfg, logger)
		require.NoError(t, err)
		assert.IsType(t, &bcryptHasher{}, matcher)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{Auth: &config.AuthConfig{PasswordScheme: "rot13"}}
		_, err := NewPasswordMatcher(cfg, logger)
		assert.ErrorContains(t, err, "unknown password scheme")
	})
}
