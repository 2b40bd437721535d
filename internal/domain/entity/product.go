package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxProductNameLength is the longest product name, in characters, the catalog stores.
const MaxProductNameLength = 200

// Product is a catalog item owned by a merchant.
type Product struct {
	ID          uuid.UUID
	MerchantID  uuid.UUID
	Name        string
	Description *string
	Price       float64
	Active      bool
	Tags        []*DietaryTag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasTag reports whether a tag with the given code is associated with the product.
func (p *Product) HasTag(code string) bool {
	return slices.ContainsFunc(p.Tags, func(t *DietaryTag) bool {
		return t.Code == code
	})
}

// NameContains reports whether the product name contains query, ignoring case.
func (p *Product) NameContains(query string) bool {
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(query))
}

// ProductFilter narrows a product listing. Empty fields do not filter.
type ProductFilter struct {
	Query   string
	TagCode string
}

// Matches reports whether p satisfies every set criterion of the filter.
func (f ProductFilter) Matches(p *Product) bool {
	if f.Query != "" && !p.NameContains(f.Query) {
		return false
	}
	if f.TagCode != "" && !p.HasTag(f.TagCode) {
		return false
	}

	return true
}
