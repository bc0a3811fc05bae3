package repository

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/errors"
)

// ErrPostNotFound is returned when no post matches the lookup.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the store operations for posts.
type PostRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	FindAll(ctx context.Context) ([]*entity.Post, error)

	// Create inserts the post and sets post.ID. AuthorID is stored as given.
	Create(ctx context.Context, post *entity.Post) error

	UpdateTitle(ctx context.Context, id int64, title string) error

	Delete(ctx context.Context, id int64) error
}
