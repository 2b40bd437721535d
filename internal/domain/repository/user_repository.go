// Package repository declares the persistence contracts the usecases depend on.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by lookups that match no account.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts. Emails are unique after normalization by
// the caller; a duplicate Create yields domainerrors.ErrUserAlreadyExists.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	// UpdateRole is used when a client opens a storefront.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error
}
