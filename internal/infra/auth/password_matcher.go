package auth

import (
	"log/slog"

	"blog/config"
	"blog/internal/domain/service"
	"blog/internal/errors"
)

// NewPasswordMatcher selects the PasswordMatcher named by auth.passwordScheme.
func NewPasswordMatcher(cfg *config.Config, logger *slog.Logger) (service.PasswordMatcher, error) {
	switch scheme := cfg.PasswordScheme(); scheme {
	case config.PasswordSchemePlaintext:
		logger.Warn("Author passwords are stored and compared in plaintext; set auth.passwordScheme=bcrypt for salted hashes")

		return NewPlaintextMatcher(), nil
	case config.PasswordSchemeBcrypt:
		cost := 0
		if cfg.Auth != nil {
			cost = cfg.Auth.BcryptCost
		}

		return NewBcryptHasher(cost), nil
	default:
		return nil, errors.Errorf("unknown password scheme: %s", scheme)
	}
}
