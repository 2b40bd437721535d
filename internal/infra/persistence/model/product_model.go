package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Tags are joined through 'product_tags'.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MerchantID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description *string   `gorm:"type:text"`
	Price       float64   `gorm:"type:double precision;not null"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Tags []*DietaryTagModel `gorm:"many2many:product_tags;joinForeignKey:ProductID;joinReferences:TagID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductTagModel mirrors the 'product_tags' join table.
type ProductTagModel struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID     uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (ProductTagModel) TableName() string {
	return "product_tags"
}
