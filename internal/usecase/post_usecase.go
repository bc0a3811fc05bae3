package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

type CreatePostInput struct {
	Title    string
	AuthorID int64
}

type UpdatePostInput struct {
	Title string
}

// PostUsecase defines post management. Any authenticated author may change any post.
type PostUsecase interface {
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	GetPost(ctx context.Context, id int64) (*entity.Post, error)
	CreatePost(ctx context.Context, actor *entity.Author, input CreatePostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, actor *entity.Author, id int64, input UpdatePostInput) error
	DeletePost(ctx context.Context, actor *entity.Author, id int64) error
}
