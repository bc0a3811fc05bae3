// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "blog/internal/errors"

// ErrPasswordTooLong is returned by Hash when the scheme cannot represent the
// whole password.
var ErrPasswordTooLong = errors.New("password is too long")

// PasswordMatcher turns a supplied password into its stored form and checks
// a login attempt against that form.
type PasswordMatcher interface {
	// Hash returns the value to persist for password.
	Hash(password string) (string, error)

	// Check reports whether password matches the stored value.
	Check(password, stored string) bool
}
