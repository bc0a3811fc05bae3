package impl

import (
	"context"
	"log/slog"

	"blog/config"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/lifecycle"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"go.uber.org/fx"
)

// AuthorSeedParams holds dependencies for RegisterAuthorSeed, injected by Fx.
type AuthorSeedParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	AuthorRepo repository.AuthorRepository
	Matcher    service.PasswordMatcher
	Logger     *slog.Logger
}

// RegisterAuthorSeed creates the configured bootstrap author on start. It is
// the only way to obtain a first login on an empty store.
func RegisterAuthorSeed(params AuthorSeedParams) {
	seed := params.Config.BootstrapAuthor()
	if seed == nil {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return seedAuthor(ctx, params.AuthorRepo, params.Matcher, params.Logger, seed)
		},
	})
}

// seedAuthor inserts seed as an admin unless an author already has its name.
// Existing authors are left untouched, including their password.
func seedAuthor(ctx context.Context, repo repository.AuthorRepository, matcher service.PasswordMatcher, logger *slog.Logger, seed *config.BootstrapAuthor) error {
	_, err := repo.FindByName(ctx, seed.Name)
	if err == nil {
		logger.Debug("Bootstrap author already present", slog.String("name", seed.Name))

		return nil
	}
	if !errors.Is(err, repository.ErrAuthorNotFound) {
		return errors.Wrap(err, "failed to look up bootstrap author")
	}

	stored, err := matcher.Hash(seed.Password)
	if err != nil {
		return errors.Wrap(err, "failed to prepare bootstrap author password")
	}

	author := &entity.Author{
		Name:     seed.Name,
		Email:    seed.Email,
		Password: stored,
		Admin:    true,
	}
	err = repo.Create(ctx, author)
	if errors.Is(err, domainerrors.ErrAuthorAlreadyExists) {
		// Another replica won the insert.
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to create bootstrap author")
	}

	logger.Info("Bootstrap author created", slog.Int64("author_id", author.ID), slog.String("name", author.Name))

	return nil
}
