package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMerchantNotFound is returned when no merchant matches the lookup.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository persists storefronts.
type MerchantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	// FindByUserID returns the single merchant owned by userID.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Merchant, error)

	// Create persists a merchant. A second merchant for the same user yields ErrMerchantAlreadyExists.
	Create(ctx context.Context, merchant *entity.Merchant) error
}
