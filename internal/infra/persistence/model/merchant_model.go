package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantModel mirrors the 'merchants' table. UserID is unique: one storefront per user.
type MerchantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	StoreName string    `gorm:"type:varchar(150);not null"`
	Verified  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}
