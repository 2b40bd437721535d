package entity

import (
	"time"

	"github.com/google/uuid"
)

// Column limits of the tag vocabulary, in characters.
const (
	MaxTagCodeLength  = 64
	MaxTagLabelLength = 150
)

// DietaryTag is an entry of the shared dietary vocabulary, such as "vegan".
type DietaryTag struct {
	ID        uuid.UUID
	Code      string // Stable external identifier, unique.
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
