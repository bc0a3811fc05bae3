package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/errors"
	"blog/internal/usecase"

	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	events   contentEvents
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo  repository.PostRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		events:   contentEvents{publisher: params.Publisher, now: time.Now},
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *postService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

func (srv *postService) GetPost(ctx context.Context, id int64) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, domainerrors.ErrPostNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// CreatePost does not check that AuthorID refers to an existing author.
func (srv *postService) CreatePost(ctx context.Context, actor *entity.Author, input usecase.CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:    input.Title,
		AuthorID: input.AuthorID,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Int64("post_id", post.ID), slog.Int64("author_id", post.AuthorID))
	srv.events.publish(ctx, srv.log(ctx), service.EventPostCreated, post.ID, actor)

	return post, nil
}

func (srv *postService) UpdatePost(ctx context.Context, actor *entity.Author, id int64, input usecase.UpdatePostInput) error {
	err := srv.postRepo.UpdateTitle(ctx, id, input.Title)
	if errors.Is(err, repository.ErrPostNotFound) {
		return domainerrors.ErrPostNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to update post")
	}

	srv.log(ctx).Info("Post updated", slog.Int64("post_id", id))
	srv.events.publish(ctx, srv.log(ctx), service.EventPostUpdated, id, actor)

	return nil
}

func (srv *postService) DeletePost(ctx context.Context, actor *entity.Author, id int64) error {
	err := srv.postRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPostNotFound) {
		return domainerrors.ErrPostNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Int64("post_id", id))
	srv.events.publish(ctx, srv.log(ctx), service.EventPostDeleted, id, actor)

	return nil
}
