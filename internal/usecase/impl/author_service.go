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

// authorService implements the AuthorUsecase interface.
type authorService struct {
	authorRepo repository.AuthorRepository
	matcher    service.PasswordMatcher
	events     contentEvents
	logger     *slog.Logger
}

// AuthorServiceParams holds dependencies for AuthorService, injected by Fx.
type AuthorServiceParams struct {
	fx.In

	AuthorRepo repository.AuthorRepository
	Matcher    service.PasswordMatcher
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

func NewAuthorService(params AuthorServiceParams) usecase.AuthorUsecase {
	return &authorService{
		authorRepo: params.AuthorRepo,
		matcher:    params.Matcher,
		events:     contentEvents{publisher: params.Publisher, now: time.Now},
		logger:     params.Logger,
	}
}

func (srv *authorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authorService) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := srv.authorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	return authors, nil
}

func (srv *authorService) GetAuthor(ctx context.Context, id int64) (*entity.Author, error) {
	author, err := srv.authorRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAuthorNotFound) {
		return nil, domainerrors.ErrAuthorNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find author")
	}

	return author, nil
}

// CreateAuthor stores the password in the form chosen by the PasswordMatcher.
// New authors are never admins.
func (srv *authorService) CreateAuthor(ctx context.Context, actor *entity.Author, input usecase.CreateAuthorInput) (*entity.Author, error) {
	stored, err := srv.matcher.Hash(input.Password)
	if errors.Is(err, service.ErrPasswordTooLong) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password is too long")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to prepare password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	author := &entity.Author{
		Name:     input.Name,
		Email:    input.Email,
		Password: stored,
	}
	if err := srv.authorRepo.Create(ctx, author); err != nil {
		return nil, errors.Wrap(err, "failed to create author")
	}

	srv.log(ctx).Info("Author created", slog.Int64("author_id", author.ID))
	srv.events.publish(ctx, srv.log(ctx), service.EventAuthorCreated, author.ID, actor)

	return author, nil
}

func (srv *authorService) UpdateAuthor(ctx context.Context, actor *entity.Author, id int64, input usecase.UpdateAuthorInput) error {
	err := srv.authorRepo.UpdateProfile(ctx, id, input.Name, input.Email)
	if errors.Is(err, repository.ErrAuthorNotFound) {
		return domainerrors.ErrAuthorNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to update author")
	}

	srv.log(ctx).Info("Author updated", slog.Int64("author_id", id))
	srv.events.publish(ctx, srv.log(ctx), service.EventAuthorUpdated, id, actor)

	return nil
}

// DeleteAuthor leaves the author's posts in place.
func (srv *authorService) DeleteAuthor(ctx context.Context, actor *entity.Author, id int64) error {
	err := srv.authorRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrAuthorNotFound) {
		return domainerrors.ErrAuthorNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete author")
	}

	srv.log(ctx).Info("Author deleted", slog.Int64("author_id", id))
	srv.events.publish(ctx, srv.log(ctx), service.EventAuthorDeleted, id, actor)

	return nil
}
