// Package impl contains the implementation of the application's business logic.
package impl

import (
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

type accessPolicy struct {
	rules map[entity.Operation]entity.AccessRule
}

// AccessPolicyParams holds dependencies for AccessPolicy, injected by Fx.
type AccessPolicyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewAccessPolicy builds the operation rule table, applying the configured tag creation policy.
func NewAccessPolicy(params AccessPolicyParams) usecase.AccessPolicy {
	rules := entity.DefaultAccessPolicy()

	tagCreate := constants.TagCreatePolicyAuthenticated
	if params.Config != nil && params.Config.Policy != nil && params.Config.Policy.TagCreate != "" {
		tagCreate = params.Config.Policy.TagCreate
	}

	if tagCreate == constants.TagCreatePolicyAdmin {
		rules[entity.OpTagCreate] = entity.RequireRole(entity.RoleAdmin)
	} else if params.Logger != nil {
		params.Logger.Warn("Tag creation is open to any authenticated user while tag update and delete require admin",
			slog.String("operation", string(entity.OpTagCreate)),
			slog.String("rule", rules[entity.OpTagCreate].String()),
		)
	}

	return &accessPolicy{rules: rules}
}

func (p *accessPolicy) Rule(op entity.Operation) entity.AccessRule {
	rule, ok := p.rules[op]
	if !ok {
		// Unlisted operations are closed to everyone but admins.
		return entity.RequireRole(entity.RoleAdmin)
	}

	return rule
}

func (p *accessPolicy) Authorize(principal *entity.User, op entity.Operation) error {
	rule := p.Rule(op)
	if rule.Kind == entity.AccessPublic {
		return nil
	}
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}
	if rule.Kind == entity.AccessRole {
		return p.RequireRole(principal, rule.Role)
	}

	return nil
}

func (p *accessPolicy) RequireRole(principal *entity.User, role entity.Role) error {
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}
	if !principal.HasRole(role) {
		return domainerrors.ErrForbidden.WithDetails("requires role '" + role.String() + "'")
	}

	return nil
}

func (p *accessPolicy) RequireOwner(principal *entity.User, merchant *entity.Merchant) error {
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}
	if !merchant.IsOwnedBy(principal.ID) {
		return domainerrors.ErrNotProductOwner
	}

	return nil
}
