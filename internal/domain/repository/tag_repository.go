package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTagNotFound is returned when no dietary tag matches the lookup.
var ErrTagNotFound = errors.New("tag not found")

// TagRepository persists the dietary tag vocabulary.
type TagRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DietaryTag, error)

	FindByCode(ctx context.Context, code string) (*entity.DietaryTag, error)

	// List returns the whole vocabulary in insertion order.
	List(ctx context.Context) ([]*entity.DietaryTag, error)

	// Create persists a tag. A duplicate code yields ErrTagCodeConflict.
	Create(ctx context.Context, tag *entity.DietaryTag) error

	// Update saves code and label. A code taken by another tag yields ErrTagCodeConflict.
	Update(ctx context.Context, tag *entity.DietaryTag) error

	// Delete removes the tag and every product association that references it.
	Delete(ctx context.Context, id uuid.UUID) error
}
