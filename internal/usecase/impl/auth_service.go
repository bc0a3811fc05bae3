// Package impl contains the implementation of the application's business logic.
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

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	authorRepo   repository.AuthorRepository
	matcher      service.PasswordMatcher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time

	// dummyCredential is checked for unknown names so both failure paths
	// run the matcher once.
	dummyCredential string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AuthorRepo   repository.AuthorRepository
	Matcher      service.PasswordMatcher
	TokenService service.TokenService
	Logger       *slog.Logger
}

func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	dummy, err := params.Matcher.Hash(uuid.NewString())
	if err != nil {
		// Check against "" still runs the matcher and never succeeds.
		params.Logger.Warn("Failed to prepare dummy credential", slog.Any("error", err))
	}

	return &authService{
		authorRepo:      params.AuthorRepo,
		matcher:         params.Matcher,
		tokenService:    params.TokenService,
		logger:          params.Logger,
		now:             time.Now,
		dummyCredential: dummy,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Name == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	author, err := srv.authorRepo.FindByName(ctx, input.Name)
	if errors.Is(err, repository.ErrAuthorNotFound) {
		srv.matcher.Check(input.Password, srv.dummyCredential)
		srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown author"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find author by name")
	}

	if !srv.matcher.Check(input.Password, author.Password) {
		srv.log(ctx).Info("Login rejected", slog.String("reason", "password mismatch"), slog.Int64("author_id", author.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	now := srv.now()
	token, err := srv.tokenService.Issue(author.ID, now)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("author_id", author.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("author_id", author.ID))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: now.Add(service.AccessTokenTTL),
		Author:    author,
	}, nil
}

func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Author, error) {
	authorID, err := srv.tokenService.Verify(token, srv.now())
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	author, err := srv.authorRepo.FindByID(ctx, authorID)
	if errors.Is(err, repository.ErrAuthorNotFound) {
		srv.log(ctx).Info("Access token for missing author", slog.Int64("author_id", authorID))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("author no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token author")
	}

	return author, nil
}
