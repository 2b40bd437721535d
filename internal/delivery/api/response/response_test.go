package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "42"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"42"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "not found keeps details",
			err:         domainerrors.ErrTagNotFound.WithDetails("tag 'paleo' not found"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "TAG_NOT_FOUND",
			wantDetails: "tag 'paleo' not found",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrForbidden.WithDetails("requires role admin"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "wrapped internal error hides details",
			err:        domainerrors.ErrInternalError.WrapMessage("product merchant is missing"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}

func TestHandleAppError_PassesThroughOtherErrors(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, assert.AnError)

	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, c.Response().Committed)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestValidationFailed(t *testing.T) {
	tests := []struct {
		name        string
		fields      map[string]string
		wantDetails any
	}{
		{name: "with fields", fields: map[string]string{"email": "email"}, wantDetails: map[string]any{"email": "email"}},
		{name: "without fields", fields: nil},
		{name: "empty fields", fields: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, ValidationFailed(c, "Invalid request payload", tt.fields))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestInvalidID(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, InvalidID(c, "product"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid product ID", decodeError(t, rec).Error.Message)
}
