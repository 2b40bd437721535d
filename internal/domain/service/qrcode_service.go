package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes that point shoppers at a storefront.
type QRCodeService interface {
	// GenerateStorefrontQR returns a PNG encoding the public product listing URL of the merchant.
	GenerateStorefrontQR(merchantID uuid.UUID) ([]byte, error)

	// StorefrontURL returns the URL encoded by GenerateStorefrontQR.
	StorefrontURL(merchantID uuid.UUID) string
}
