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
	"gorm.io/gorm/clause"
)

// productRepository implements repository.ProductRepository. Tags are always
// preloaded in insertion order so callers see the full product.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) withTags(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("dietary_tags.created_at, dietary_tags.id")
	})
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.withTags(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return model.ToProductDomain(&productM), nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	return repo.list(ctx, repo.withTags(ctx))
}

func (repo *productRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error) {
	return repo.list(ctx, repo.withTags(ctx).Where("merchant_id = ?", merchantID))
}

func (repo *productRepository) list(_ context.Context, query *gorm.DB) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := query.Order("created_at, id").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, model.ToProductDomain(productM))
	}

	return products, nil
}

// Create inserts the product row and its product_tags rows on the same connection,
// so callers running inside a transaction get both or neither.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := model.FromProductDomain(product)
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(productM).Error; err != nil {
		return translateProductWriteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	tagIDs := make([]uuid.UUID, 0, len(product.Tags))
	for _, tag := range product.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	return repo.insertTags(db, product.ID, tagIDs)
}

// Update saves the scalar columns, including zero values such as active=false or price=0.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := model.FromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(productM).
		Select("name", "description", "price", "active", "updated_at").
		Omit(clause.Associations).
		Updates(productM)
	if result.Error != nil {
		return translateProductWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("product_id = ?", id).Delete(&model.ProductTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product tags")
	}

	result := db.Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) AddTags(ctx context.Context, productID uuid.UUID, tagIDs []uuid.UUID) error {
	return repo.insertTags(repo.db.WithContext(ctx), productID, tagIDs)
}

func (repo *productRepository) RemoveTag(ctx context.Context, productID, tagID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("product_id = ? AND tag_id = ?", productID, tagID).
		Delete(&model.ProductTagModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove product tag")
	}

	return nil
}

func (repo *productRepository) ReplaceTags(ctx context.Context, productID uuid.UUID, tagIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("product_id = ?", productID).Delete(&model.ProductTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product tags")
	}

	return repo.insertTags(db, productID, tagIDs)
}

// insertTags adds associations, ignoring ones that already exist.
func (repo *productRepository) insertTags(db *gorm.DB, productID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]model.ProductTagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.ProductTagModel{ProductID: productID, TagID: tagID})
	}

	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("product or tag no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to associate product tags")
	}

	return nil
}

func translateProductWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrMerchantNotFound.WrapMessage("product merchant does not exist")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
	case isDataRangeViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("product field exceeds its limit")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
