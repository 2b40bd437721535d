package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"-" validate:"omitempty,max=3"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signupRequest{Email: "a@example.com", Password: "longenough"}))

	err := v.Validate(&signupRequest{Email: "not-an-email", Password: "short"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"email":    "email",
		"password": "min=8",
	}, FieldErrors(err))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
