package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (repo *tagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DietaryTag, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *tagRepository) FindByCode(ctx context.Context, code string) (*entity.DietaryTag, error) {
	return repo.findOne(ctx, "code = ?", code)
}

func (repo *tagRepository) findOne(ctx context.Context, cond string, arg any) (*entity.DietaryTag, error) {
	var tagM model.DietaryTagModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&tagM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag")
	}

	return model.ToTagDomain(&tagM), nil
}

func (repo *tagRepository) List(ctx context.Context) ([]*entity.DietaryTag, error) {
	var tagMs []*model.DietaryTagModel
	if err := repo.db.WithContext(ctx).Order("created_at, id").Find(&tagMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	tags := make([]*entity.DietaryTag, 0, len(tagMs))
	for _, tagM := range tagMs {
		tags = append(tags, model.ToTagDomain(tagM))
	}

	return tags, nil
}

func (repo *tagRepository) Create(ctx context.Context, tag *entity.DietaryTag) error {
	tagM := model.FromTagDomain(tag)

	if err := repo.db.WithContext(ctx).Create(tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTagCodeConflict.WithDetails("tag code '" + tag.Code + "' already exists")
		}
		if isDataRangeViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("tag field exceeds its limit")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tag")
	}

	tag.ID = tagM.ID
	tag.CreatedAt = tagM.CreatedAt
	tag.UpdatedAt = tagM.UpdatedAt

	return nil
}

func (repo *tagRepository) Update(ctx context.Context, tag *entity.DietaryTag) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DietaryTagModel{ID: tag.ID}).
		Updates(map[string]any{
			"code":  tag.Code,
			"label": tag.Label,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrTagCodeConflict.WithDetails("tag code '" + tag.Code + "' already exists")
		}
		if isDataRangeViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("tag field exceeds its limit")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTagNotFound
	}

	return nil
}

// Delete removes the tag's product associations before the tag itself.
func (repo *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("tag_id = ?", id).Delete(&model.ProductTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach tag from products")
	}

	result := db.Where("id = ?", id).Delete(&model.DietaryTagModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTagNotFound
	}

	return nil
}
