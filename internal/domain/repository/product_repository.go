package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists products and their tag associations.
// Every returned product carries its tags.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns all products in insertion order.
	List(ctx context.Context) ([]*entity.Product, error)

	// ListByMerchant returns the products of one merchant in insertion order.
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error)

	// Create persists the product together with the associations in product.Tags.
	Create(ctx context.Context, product *entity.Product) error

	// Update saves the scalar fields of the product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product and its tag associations.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddTags associates tags with the product, skipping those already present.
	AddTags(ctx context.Context, productID uuid.UUID, tagIDs []uuid.UUID) error

	// RemoveTag drops one association. Removing an absent association is not an error.
	RemoveTag(ctx context.Context, productID, tagID uuid.UUID) error

	// ReplaceTags sets the product's associations to exactly tagIDs.
	ReplaceTags(ctx context.Context, productID uuid.UUID, tagIDs []uuid.UUID) error
}
