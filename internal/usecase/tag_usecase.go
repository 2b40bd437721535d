package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// TagInput carries the fields of a dietary tag.
type TagInput struct {
	Code  string
	Label string
}

// TagUsecase manages the shared dietary tag vocabulary.
type TagUsecase interface {
	CreateTag(ctx context.Context, principal *entity.User, input *TagInput) (*entity.DietaryTag, error)
	ListTags(ctx context.Context) ([]*entity.DietaryTag, error)
	UpdateTag(ctx context.Context, principal *entity.User, tagID uuid.UUID, input *TagInput) (*entity.DietaryTag, error)
	DeleteTag(ctx context.Context, principal *entity.User, tagID uuid.UUID) error
}
