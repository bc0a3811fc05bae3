package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

type CreateAuthorInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateAuthorInput holds the only fields an author update may change.
type UpdateAuthorInput struct {
	Name  string
	Email string
}

// AuthorUsecase defines author management. actor is the authenticated caller;
// it is recorded on content events and never used to restrict access.
type AuthorUsecase interface {
	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	GetAuthor(ctx context.Context, id int64) (*entity.Author, error)
	CreateAuthor(ctx context.Context, actor *entity.Author, input CreateAuthorInput) (*entity.Author, error)
	UpdateAuthor(ctx context.Context, actor *entity.Author, id int64, input UpdateAuthorInput) error
	DeleteAuthor(ctx context.Context, actor *entity.Author, id int64) error
}
