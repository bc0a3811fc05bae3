// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"blog/internal/domain/entity"
)

// LoginInput carries the Basic credentials of a login request.
type LoginInput struct {
	Name     string
	Password string
}

// LoginOutput returns the issued access token.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Author    *entity.Author
}

// AuthUsecase issues access tokens and resolves them back to authors.
type AuthUsecase interface {
	// Login returns ErrInvalidCredentials for an unknown name and a wrong
	// password alike.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authenticate verifies token and loads its author. Any failure,
	// including a deleted author, is ErrInvalidToken.
	Authenticate(ctx context.Context, token string) (*entity.Author, error)
}
