package model

import (
	"time"

	"github.com/google/uuid"
)

// DietaryTagModel mirrors the 'dietary_tags' table.
type DietaryTagModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Label     string    `gorm:"type:varchar(150);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DietaryTagModel) TableName() string {
	return "dietary_tags"
}
