package impl

import (
	"context"
	"testing"

	"blog/config"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	mockService "blog/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testSeed() *config.BootstrapAuthor {
	return &config.BootstrapAuthor{Name: "admin", Email: "admin@example.com", Password: "asdfgqwert"}
}

func TestSeedAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing author as admin", func(t *testing.T) {
		repo := mockRepo.NewMockAuthorRepository(t)
		matcher := mockService.NewMockPasswordMatcher(t)

		repo.EXPECT().FindByName(ctx, "admin").Return(nil, repository.ErrAuthorNotFound)
		matcher.EXPECT().Hash("asdfgqwert").Return("stored", nil)
		repo.EXPECT().Create(ctx, mock.MatchedBy(func(a *entity.Author) bool {
			return a.Name == "admin" && a.Email == "admin@example.com" && a.Password == "stored" && a.Admin
		})).Run(func(_ context.Context, a *entity.Author) { a.ID = 1 }).Return(nil)

		require.NoError(t, seedAuthor(ctx, repo, matcher, newDiscardLogger(), testSeed()))
	})

	t.Run("existing author is untouched", func(t *testing.T) {
		repo := mockRepo.NewMockAuthorRepository(t)
		matcher := mockService.NewMockPasswordMatcher(t)

		repo.EXPECT().FindByName(ctx, "admin").Return(&entity.Author{ID: 7, Name: "admin"}, nil)

		require.NoError(t, seedAuthor(ctx, repo, matcher, newDiscardLogger(), testSeed()))
	})

	t.Run("concurrent insert counts as present", func(t *testing.T) {
		repo := mockRepo.NewMockAuthorRepository(t)
		matcher := mockService.NewMockPasswordMatcher(t)

		repo.EXPECT().FindByName(ctx, "admin").Return(nil, repository.ErrAuthorNotFound)
		matcher.EXPECT().Hash("asdfgqwert").Return("stored", nil)
		repo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrAuthorAlreadyExists)

		require.NoError(t, seedAuthor(ctx, repo, matcher, newDiscardLogger(), testSeed()))
	})

	t.Run("store failure stops startup", func(t *testing.T) {
		repo := mockRepo.NewMockAuthorRepository(t)
		matcher := mockService.NewMockPasswordMatcher(t)

		repo.EXPECT().FindByName(ctx, "admin").Return(nil, errors.New("connection refused"))

		assert.ErrorContains(t, seedAuthor(ctx, repo, matcher, newDiscardLogger(), testSeed()), "connection refused")
	})
}

func TestRegisterAuthorSeed(t *testing.T) {
	t.Run("no seed configured", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		RegisterAuthorSeed(AuthorSeedParams{
			Lifecycle:  lc,
			Config:     &config.Config{},
			AuthorRepo: mockRepo.NewMockAuthorRepository(t),
			Matcher:    mockService.NewMockPasswordMatcher(t),
			Logger:     newDiscardLogger(),
		})
		lc.RequireStart().RequireStop()
	})

	t.Run("seed runs on start", func(t *testing.T) {
		repo := mockRepo.NewMockAuthorRepository(t)
		repo.EXPECT().FindByName(mock.Anything, "admin").Return(&entity.Author{ID: 1, Name: "admin"}, nil).Once()

		cfg := &config.Config{Bootstrap: &config.BootstrapConfig{Author: testSeed()}}
		lc := fxtest.NewLifecycle(t)
		RegisterAuthorSeed(AuthorSeedParams{
			Lifecycle:  lc,
			Config:     cfg,
			AuthorRepo: repo,
			Matcher:    mockService.NewMockPasswordMatcher(t),
			Logger:     newDiscardLogger(),
		})
		lc.RequireStart().RequireStop()
	})
}
