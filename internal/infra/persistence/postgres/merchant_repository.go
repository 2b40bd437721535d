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

type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{db: db}
}

func (repo *merchantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *merchantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Merchant, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *merchantRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Merchant, error) {
	var merchantM model.MerchantModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	return model.ToMerchantDomain(&merchantM), nil
}

// Create relies on the unique index on user_id to reject a second storefront.
func (repo *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := model.FromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).Create(merchantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrMerchantAlreadyExists.WrapMessage("user already has a merchant")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("merchant owner does not exist")
		}
		if isDataRangeViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("store_name exceeds its limit")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant")
	}

	merchant.ID = merchantM.ID
	merchant.CreatedAt = merchantM.CreatedAt
	merchant.UpdatedAt = merchantM.UpdatedAt

	return nil
}
