package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMerchantInput defines the data required to open a storefront.
type CreateMerchantInput struct {
	StoreName string
}

// StorefrontQR is a rendered storefront QR code.
type StorefrontQR struct {
	URL string
	PNG []byte
}

// MerchantUsecase manages storefronts.
type MerchantUsecase interface {
	// CreateMerchant opens the principal's storefront and promotes the principal to merchant in one transaction.
	CreateMerchant(ctx context.Context, principal *entity.User, input *CreateMerchantInput) (*entity.Merchant, error)
	GetMyMerchant(ctx context.Context, principal *entity.User) (*entity.Merchant, error)
	GetStorefrontQR(ctx context.Context, merchantID uuid.UUID) (*StorefrontQR, error)
}
