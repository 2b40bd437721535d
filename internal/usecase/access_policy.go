package usecase

import (
	"marketplace/internal/domain/entity"
)

// AccessPolicy decides whether a principal may run a gated operation.
// A nil principal stands for an anonymous caller.
type AccessPolicy interface {
	// Rule returns the requirement configured for op.
	Rule(op entity.Operation) entity.AccessRule
	// Authorize fails with ErrUnauthorized or ErrForbidden when the principal does not satisfy op's rule.
	Authorize(principal *entity.User, op entity.Operation) error
	// RequireRole fails with ErrForbidden unless the principal holds exactly role.
	RequireRole(principal *entity.User, role entity.Role) error
	// RequireOwner fails with ErrNotProductOwner unless the principal owns merchant.
	RequireOwner(principal *entity.User, merchant *entity.Merchant) error
}
