// Package model holds the GORM persistence models and their mapping to domain entities.
package model

import (
	"marketplace/internal/domain/entity"
)

// ToUserDomain maps a persistence model to a domain user.
func ToUserDomain(m *UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserDomain maps a domain user to its persistence model.
func FromUserDomain(u *entity.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         u.Role.String(),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToMerchantDomain maps a persistence model to a domain merchant.
func ToMerchantDomain(m *MerchantModel) *entity.Merchant {
	if m == nil {
		return nil
	}

	return &entity.Merchant{
		ID:        m.ID,
		UserID:    m.UserID,
		StoreName: m.StoreName,
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromMerchantDomain maps a domain merchant to its persistence model.
func FromMerchantDomain(m *entity.Merchant) *MerchantModel {
	return &MerchantModel{
		ID:        m.ID,
		UserID:    m.UserID,
		StoreName: m.StoreName,
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToTagDomain maps a persistence model to a domain tag.
func ToTagDomain(m *DietaryTagModel) *entity.DietaryTag {
	if m == nil {
		return nil
	}

	return &entity.DietaryTag{
		ID:        m.ID,
		Code:      m.Code,
		Label:     m.Label,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromTagDomain maps a domain tag to its persistence model.
func FromTagDomain(t *entity.DietaryTag) *DietaryTagModel {
	return &DietaryTagModel{
		ID:        t.ID,
		Code:      t.Code,
		Label:     t.Label,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToProductDomain maps a persistence model, including loaded tags, to a domain product.
func ToProductDomain(m *ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	tags := make([]*entity.DietaryTag, 0, len(m.Tags))
	for _, t := range m.Tags {
		tags = append(tags, ToTagDomain(t))
	}

	return &entity.Product{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Active:      m.Active,
		Tags:        tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromProductDomain maps a domain product to its persistence model without tags.
func FromProductDomain(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		MerchantID:  p.MerchantID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
