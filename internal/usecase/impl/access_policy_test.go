package impl

import (
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessPolicy_Authorize(t *testing.T) {
	policy := newTestPolicy("")
	client := newUser(entity.RoleClient)
	merchant := newUser(entity.RoleMerchant)
	admin := newUser(entity.RoleAdmin)

	tests := []struct {
		name      string
		principal *entity.User
		op        entity.Operation
		wantErr   error
	}{
		{"anonymous merchant create", nil, entity.OpMerchantCreate, domainerrors.ErrUnauthorized},
		{"client merchant create", client, entity.OpMerchantCreate, nil},
		{"client product create", client, entity.OpProductCreate, domainerrors.ErrForbidden},
		{"merchant product create", merchant, entity.OpProductCreate, nil},
		{"admin is not a merchant", admin, entity.OpProductUpdate, domainerrors.ErrForbidden},
		{"client tag create", client, entity.OpTagCreate, nil},
		{"anonymous tag create", nil, entity.OpTagCreate, domainerrors.ErrUnauthorized},
		{"merchant tag update", merchant, entity.OpTagUpdate, domainerrors.ErrForbidden},
		{"admin tag delete", admin, entity.OpTagDelete, nil},
		{"unlisted operation", merchant, entity.Operation("product.export"), domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Authorize(tt.principal, tt.op)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccessPolicy_TagCreateAdminOnly(t *testing.T) {
	policy := newTestPolicy("admin")

	assert.Equal(t, "role:admin", policy.Rule(entity.OpTagCreate).String())
	assert.ErrorIs(t, policy.Authorize(newUser(entity.RoleClient), entity.OpTagCreate), domainerrors.ErrForbidden)
	assert.NoError(t, policy.Authorize(newUser(entity.RoleAdmin), entity.OpTagCreate))
}

func TestAccessPolicy_RequireRole(t *testing.T) {
	policy := newTestPolicy("")

	assert.ErrorIs(t, policy.RequireRole(nil, entity.RoleAdmin), domainerrors.ErrUnauthorized)
	assert.ErrorIs(t, policy.RequireRole(newUser(entity.RoleMerchant), entity.RoleAdmin), domainerrors.ErrForbidden)
	assert.NoError(t, policy.RequireRole(newUser(entity.RoleAdmin), entity.RoleAdmin))
}

func TestAccessPolicy_RequireOwner(t *testing.T) {
	policy := newTestPolicy("")
	owner := newUser(entity.RoleMerchant)
	store := &entity.Merchant{ID: uuid.New(), UserID: owner.ID}

	assert.NoError(t, policy.RequireOwner(owner, store))
	assert.ErrorIs(t, policy.RequireOwner(newUser(entity.RoleMerchant), store), domainerrors.ErrNotProductOwner)
	assert.ErrorIs(t, policy.RequireOwner(nil, store), domainerrors.ErrUnauthorized)
}
