package entity

// Operation names a gated use case.
type Operation string

const (
	OpMerchantCreate Operation = "merchant.create"
	OpMerchantMe     Operation = "merchant.me"

	OpProductCreate    Operation = "product.create"
	OpProductUpdate    Operation = "product.update"
	OpProductDelete    Operation = "product.delete"
	OpProductAddTags   Operation = "product.addTags"
	OpProductRemoveTag Operation = "product.removeTag"
	OpProductListMine  Operation = "product.listMine"

	OpTagCreate Operation = "tag.create"
	OpTagUpdate Operation = "tag.update"
	OpTagDelete Operation = "tag.delete"
)

// AccessKind classifies what an operation requires from the principal.
type AccessKind int

const (
	// AccessPublic needs no principal.
	AccessPublic AccessKind = iota
	// AccessAuthenticated needs any resolved principal.
	AccessAuthenticated
	// AccessRole needs a principal holding exactly AccessRule.Role.
	AccessRole
)

// AccessRule is the requirement attached to one operation.
type AccessRule struct {
	Kind AccessKind
	Role Role
}

// Public returns a rule open to anyone.
func Public() AccessRule {
	return AccessRule{Kind: AccessPublic}
}

// Authenticated returns a rule open to any authenticated principal.
func Authenticated() AccessRule {
	return AccessRule{Kind: AccessAuthenticated}
}

// RequireRole returns a rule that admits only principals holding role.
func RequireRole(role Role) AccessRule {
	return AccessRule{Kind: AccessRole, Role: role}
}

// String renders the rule for logs.
func (r AccessRule) String() string {
	switch r.Kind {
	case AccessPublic:
		return "public"
	case AccessAuthenticated:
		return "authenticated"
	default:
		return "role:" + r.Role.String()
	}
}

// DefaultAccessPolicy returns the rule table for every gated operation.
// Product operations additionally require ownership of the product's merchant.
func DefaultAccessPolicy() map[Operation]AccessRule {
	return map[Operation]AccessRule{
		OpMerchantCreate: Authenticated(),
		OpMerchantMe:     Authenticated(),

		OpProductCreate:    RequireRole(RoleMerchant),
		OpProductUpdate:    RequireRole(RoleMerchant),
		OpProductDelete:    RequireRole(RoleMerchant),
		OpProductAddTags:   RequireRole(RoleMerchant),
		OpProductRemoveTag: RequireRole(RoleMerchant),
		OpProductListMine:  RequireRole(RoleMerchant),

		// Open to any authenticated principal while update and delete are admin only.
		OpTagCreate: Authenticated(),
		OpTagUpdate: RequireRole(RoleAdmin),
		OpTagDelete: RequireRole(RoleAdmin),
	}
}
