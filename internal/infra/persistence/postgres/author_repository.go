// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/errors"
	"blog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// authorRepository implements the repository.AuthorRepository interface.
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository is the constructor for authorRepository.
func NewAuthorRepository(db *gorm.DB) repository.AuthorRepository {
	return &authorRepository{
		db: db,
	}
}

func (repo *authorRepository) FindByID(ctx context.Context, id int64) (*entity.Author, error) {
	var authorM model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&authorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find author by ID")
	}

	return toAuthorDomain(&authorM), nil
}

// FindByName looks up the login identifier. Name matching is exact.
func (repo *authorRepository) FindByName(ctx context.Context, name string) (*entity.Author, error) {
	var authorM model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&authorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find author by name")
	}

	return toAuthorDomain(&authorM), nil
}

func (repo *authorRepository) FindAll(ctx context.Context) ([]*entity.Author, error) {
	var authorModels []*model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&authorModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list authors")
	}

	authors := make([]*entity.Author, 0, len(authorModels))
	for _, authorM := range authorModels {
		authors = append(authors, toAuthorDomain(authorM))
	}

	return authors, nil
}

func (repo *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	authorM := fromAuthorDomain(author)
	authorM.ID = 0

	if err := repo.db.WithContext(ctx).Create(authorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAuthorAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required author information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create author")
	}

	author.ID = authorM.ID

	return nil
}

func (repo *authorRepository) UpdateProfile(ctx context.Context, id int64, name, email string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthorModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":  name,
			"email": email,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrAuthorAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update author")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// Delete removes the author row only; posts keep their author_id.
func (repo *authorRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AuthorModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete author")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAuthorDomain(data *model.AuthorModel) *entity.Author {
	if data == nil {
		return nil
	}

	return &entity.Author{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Password: data.Password,
		Admin:    data.Admin,
	}
}

func fromAuthorDomain(data *entity.Author) *model.AuthorModel {
	if data == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Password: data.Password,
		Admin:    data.Admin,
	}
}
