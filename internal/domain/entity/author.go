// Package entity contains the core business objects of the blog.
package entity

// Author is a person who can log in and write posts.
type Author struct {
	ID       int64  // Store-assigned identity, immutable once created.
	Name     string // Unique; used as the login identifier.
	Email    string
	Password string // Credential as stored by the configured PasswordMatcher.
	Admin    bool   // Role flag kept for future policy; not used by authorization.
}
