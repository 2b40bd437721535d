package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxStoreNameLength is the longest storefront name, in characters.
const MaxStoreNameLength = 150

// Merchant is a storefront owned by exactly one user.
type Merchant struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Owning user, immutable after creation.
	StoreName string
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the merchant belongs to the given user.
func (m *Merchant) IsOwnedBy(userID uuid.UUID) bool {
	return m != nil && m.UserID == userID
}
