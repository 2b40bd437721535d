package handler

import (
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"
)

// UserResponse is the public view of an account. The password hash is never rendered.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

// MerchantResponse is the public view of a storefront.
type MerchantResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StoreName string    `json:"store_name"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// TagResponse is the public view of a dietary tag.
type TagResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ProductResponse is the public view of a product with its tags.
type ProductResponse struct {
	ID          string         `json:"id"`
	MerchantID  string         `json:"merchant_id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Price       float64        `json:"price"`
	Active      bool           `json:"active"`
	Tags        []*TagResponse `json:"tags"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func toTokenResponse(output *usecase.LoginOutput) *TokenResponse {
	return &TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
		User:        toUserResponse(output.User),
	}
}

func toMerchantResponse(merchant *entity.Merchant) *MerchantResponse {
	return &MerchantResponse{
		ID:        merchant.ID.String(),
		UserID:    merchant.UserID.String(),
		StoreName: merchant.StoreName,
		Verified:  merchant.Verified,
		CreatedAt: merchant.CreatedAt,
	}
}

func toTagResponse(tag *entity.DietaryTag) *TagResponse {
	return &TagResponse{
		ID:    tag.ID.String(),
		Code:  tag.Code,
		Label: tag.Label,
	}
}

func toTagResponses(tags []*entity.DietaryTag) []*TagResponse {
	out := make([]*TagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, toTagResponse(tag))
	}

	return out
}

func toProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID.String(),
		MerchantID:  product.MerchantID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Active:      product.Active,
		Tags:        toTagResponses(product.Tags),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}
