package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"marketplace/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://shop.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_StorefrontURL(t *testing.T) {
	merchantID := uuid.MustParse("7d0c1e4a-9a55-4cb8-9d38-2a0b7c7f1f10")

	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"plain", "https://shop.example.com", "https://shop.example.com/products/merchant/7d0c1e4a-9a55-4cb8-9d38-2a0b7c7f1f10"},
		{"trailing slash", "https://shop.example.com/", "https://shop.example.com/products/merchant/7d0c1e4a-9a55-4cb8-9d38-2a0b7c7f1f10"},
		{"default", "", "http://localhost:8080/products/merchant/7d0c1e4a-9a55-4cb8-9d38-2a0b7c7f1f10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, "M", tt.baseURL)
			assert.Equal(t, tt.want, service.StorefrontURL(merchantID))
		})
	}
}

func TestQRCodeService_GenerateStorefrontQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://shop.example.com")

			qrBytes, err := service.GenerateStorefrontQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	merchantID := uuid.New()

	service := NewFromConfig(&config.Config{})
	assert.Equal(t, "http://localhost:8080/products/merchant/"+merchantID.String(), service.StorefrontURL(merchantID))

	service = NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://m.example.com"}})
	assert.Equal(t, "https://m.example.com/products/merchant/"+merchantID.String(), service.StorefrontURL(merchantID))
}
