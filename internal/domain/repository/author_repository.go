// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/errors"
)

// ErrAuthorNotFound is returned when no author matches the lookup.
var ErrAuthorNotFound = errors.New("author not found")

// AuthorRepository defines the store operations for authors.
type AuthorRepository interface {
	// FindByID retrieves an author by identity.
	FindByID(ctx context.Context, id int64) (*entity.Author, error)

	// FindByName retrieves an author by its unique login name.
	FindByName(ctx context.Context, name string) (*entity.Author, error)

	// FindAll lists every author ordered by identity.
	FindAll(ctx context.Context) ([]*entity.Author, error)

	// Create inserts the author and sets author.ID to the store-assigned identity.
	Create(ctx context.Context, author *entity.Author) error

	// UpdateProfile overwrites name and email. Password and admin are untouched.
	UpdateProfile(ctx context.Context, id int64, name, email string) error

	// Delete removes the author. Posts referencing it are left in place.
	Delete(ctx context.Context, id int64) error
}
