package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines a new product and the codes of its initial tags.
type CreateProductInput struct {
	MerchantID  uuid.UUID
	Name        string
	Description *string
	Price       float64
	TagCodes    []string
}

// UpdateProductInput is a partial update. Nil fields are left untouched;
// a non-nil TagCodes replaces the whole tag set, an empty one clears it.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Active      *bool
	TagCodes    *[]string
}

// ProductUsecase manages the product catalog.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, principal *entity.User, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListProductsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error)
	ListMyProducts(ctx context.Context, principal *entity.User) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, principal *entity.User, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, principal *entity.User, productID uuid.UUID) error
	AddTags(ctx context.Context, principal *entity.User, productID uuid.UUID, tagCodes []string) (*entity.Product, error)
	RemoveTag(ctx context.Context, principal *entity.User, productID uuid.UUID, tagCode string) (*entity.Product, error)
}
