package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleClient}

	tests := []struct {
		name       string
		header     string
		principal  *entity.User
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "valid token",
			header:     "Bearer good",
			principal:  user,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			err:        domainerrors.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "expired token",
			header:     "Bearer stale",
			err:        domainerrors.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			authUC.EXPECT().Authenticate(mock.Anything, tt.header).Return(tt.principal, tt.err)
			m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC, Logger: newDiscardLogger()})

			e := echo.New()
			e.GET("/merchants/me", func(c echo.Context) error {
				principal, ok := deliverycontext.GetPrincipal(c)
				require.True(t, ok)

				return c.String(http.StatusOK, principal.ID.String())
			}, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/merchants/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
			} else {
				assert.Equal(t, user.ID.String(), rec.Body.String())
			}
		})
	}
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := newRateLimiter(true, rate.Limit(1.0/60.0), 2, time.Minute, newDiscardLogger())

	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, rl.Limit)

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)

	limited := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMITED", decodeErrorCode(t, limited))

	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)
	assert.Equal(t, 2, rl.LimiterCount())
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := newRateLimiter(false, rate.Limit(1.0/60.0), 1, time.Minute, newDiscardLogger())

	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, rl.Limit)

	for range 5 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Zero(t, rl.LimiterCount())
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl := newRateLimiter(true, rate.Limit(1), 1, time.Minute, newDiscardLogger())
	rl.limiterFor("10.0.0.1")
	rl.limiterFor("10.0.0.2")
	rl.limiters["10.0.0.1"].lastAccess = time.Now().Add(-3 * time.Minute)

	rl.cleanup(time.Now())

	assert.Equal(t, 1, rl.LimiterCount())
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", errors.Wrap(domainerrors.ErrProductNotFound, "lookup"), http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"echo error", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	m := NewErrorMiddleware(newDiscardLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
		})
	}
}
