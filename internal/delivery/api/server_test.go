package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	apimiddleware "marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/router"
	"marketplace/internal/delivery/api/router/handler"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/metrics"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const bearer = "Bearer token"

type apiFixtures struct {
	echo       *echo.Echo
	authUC     *mockUsecase.MockAuthUsecase
	merchantUC *mockUsecase.MockMerchantUsecase
	productUC  *mockUsecase.MockProductUsecase
	tagUC      *mockUsecase.MockTagUsecase
	metrics    *metrics.Collector
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	reg := metrics.NewRegistry()
	f := apiFixtures{
		authUC:     mockUsecase.NewMockAuthUsecase(t),
		merchantUC: mockUsecase.NewMockMerchantUsecase(t),
		productUC:  mockUsecase.NewMockProductUsecase(t),
		tagUC:      mockUsecase.NewMockTagUsecase(t),
		metrics:    metrics.NewCollector(reg),
	}

	f.echo = newEcho(ServerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     cfg,
		Logger:  logger,
		Metrics: f.metrics,
		RouterParams: router.RouterParams{
			HealthHandler:   handler.NewHealthHandler(handler.HealthHandlerParams{Logger: logger}),
			AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, Logger: logger}),
			MerchantHandler: handler.NewMerchantHandler(handler.MerchantHandlerParams{MerchantUC: f.merchantUC, Logger: logger}),
			ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.productUC, Logger: logger}),
			TagHandler:      handler.NewTagHandler(handler.TagHandlerParams{TagUC: f.tagUC, Logger: logger}),
			AuthMiddleware:  apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: f.authUC, Logger: logger}),
			RateLimiter:     apimiddleware.NewRateLimiter(apimiddleware.RateLimiterParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: logger}),
			Gatherer:        reg,
			Config:          cfg,
		},
	})

	return f
}

func (f apiFixtures) do(method, target, body, authorization string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f apiFixtures) signIn(user *entity.User) {
	f.authUC.EXPECT().Authenticate(mock.Anything, bearer).Return(user, nil)
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T                 `json:"data"`
		Meta response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-42", body.Meta.RequestID)

	return body.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestAPI_Health(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_Register(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "$2a$secret", Role: entity.RoleClient}

	f.authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "ana@example.com", Password: "s3cret", Name: "Ana"}).
		Return(user, nil)

	rec := f.do(http.MethodPost, "/auth/register", `{"email":"ana@example.com","password":"s3cret","name":"Ana"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	got := decodeData[handler.UserResponse](t, rec)
	assert.Equal(t, "client", got.Role)
}

func TestAPI_Register_ValidationFailure(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(http.MethodPost, "/auth/register", `{"email":"not-an-email","password":""}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Equal(t, map[string]any{"email": "email", "password": "required"}, errInfo.Details)
}

func TestAPI_Login(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Role: entity.RoleMerchant}

	f.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "s3cret"}).
		Return(&usecase.LoginOutput{AccessToken: "jwt", TokenType: "bearer", ExpiresIn: 3600, User: user}, nil)

	rec := f.do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"s3cret"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[handler.TokenResponse](t, rec)
	assert.Equal(t, "jwt", got.AccessToken)
	assert.Equal(t, "bearer", got.TokenType)
	assert.EqualValues(t, 3600, got.ExpiresIn)
}

func TestAPI_Login_InvalidCredentials(t *testing.T) {
	f := createTestAPI(t)

	f.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := f.do(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
}

func TestAPI_Me(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Role: entity.RoleAdmin}
	f.signIn(user)

	rec := f.do(http.MethodGet, "/auth/me", "", bearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.String(), decodeData[handler.UserResponse](t, rec).ID)
}

func TestAPI_ProtectedRouteWithoutToken(t *testing.T) {
	f := createTestAPI(t)
	f.authUC.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthorized)

	rec := f.do(http.MethodPost, "/products", `{"merchant_id":"`+uuid.NewString()+`","name":"Oat Milk"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
}

func TestAPI_CreateMerchant(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleClient}
	f.signIn(user)

	merchant := &entity.Merchant{ID: uuid.New(), UserID: user.ID, StoreName: "Green Bowl"}
	f.merchantUC.EXPECT().
		CreateMerchant(mock.Anything, user, &usecase.CreateMerchantInput{StoreName: "Green Bowl"}).
		Return(merchant, nil)

	rec := f.do(http.MethodPost, "/merchants", `{"store_name":"Green Bowl"}`, bearer)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[handler.MerchantResponse](t, rec)
	assert.Equal(t, "Green Bowl", got.StoreName)
	assert.False(t, got.Verified)
}

func TestAPI_CreateMerchant_Conflict(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleMerchant}
	f.signIn(user)

	f.merchantUC.EXPECT().CreateMerchant(mock.Anything, user, mock.Anything).Return(nil, domainerrors.ErrMerchantAlreadyExists)

	rec := f.do(http.MethodPost, "/merchants", `{"store_name":"Second"}`, bearer)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "MERCHANT_ALREADY_EXISTS", decodeError(t, rec).Code)
}

func TestAPI_StorefrontQR(t *testing.T) {
	f := createTestAPI(t)
	merchantID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")

	f.merchantUC.EXPECT().
		GetStorefrontQR(mock.Anything, merchantID).
		Return(&usecase.StorefrontQR{URL: "http://shop/products/merchant/" + merchantID.String(), PNG: png}, nil)

	rec := f.do(http.MethodGet, "/merchants/"+merchantID.String()+"/qrcode", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAPI_StorefrontQR_InvalidID(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(http.MethodGet, "/merchants/42/qrcode", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_CreateProduct_UnknownTag(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleMerchant}
	f.signIn(user)
	merchantID := uuid.New()

	f.productUC.EXPECT().
		CreateProduct(mock.Anything, user, &usecase.CreateProductInput{
			MerchantID: merchantID,
			Name:       "Oat Milk",
			Price:      3.5,
			TagCodes:   []string{"vegan", "paleo"},
		}).
		Return(nil, domainerrors.ErrTagNotFound.WithDetails("tag 'paleo' not found"))

	rec := f.do(http.MethodPost, "/products",
		`{"merchant_id":"`+merchantID.String()+`","name":"Oat Milk","price":3.5,"tags":["vegan","paleo"]}`, bearer)

	require.Equal(t, http.StatusNotFound, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "TAG_NOT_FOUND", errInfo.Code)
	assert.Equal(t, "tag 'paleo' not found", errInfo.Details)
}

func TestAPI_CreateProduct_NegativePrice(t *testing.T) {
	f := createTestAPI(t)
	f.signIn(&entity.User{ID: uuid.New(), Role: entity.RoleMerchant})

	rec := f.do(http.MethodPost, "/products", `{"merchant_id":"`+uuid.NewString()+`","name":"Oat Milk","price":-1}`, bearer)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestAPI_CreateProduct_NameLongerThanColumn(t *testing.T) {
	f := createTestAPI(t)
	f.signIn(&entity.User{ID: uuid.New(), Role: entity.RoleMerchant})
	name := strings.Repeat("a", entity.MaxProductNameLength+1)

	rec := f.do(http.MethodPost, "/products", `{"merchant_id":"`+uuid.NewString()+`","name":"`+name+`","price":3.5}`, bearer)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestAPI_ListProducts_PassesFilter(t *testing.T) {
	f := createTestAPI(t)
	vegan := &entity.DietaryTag{ID: uuid.New(), Code: "vegan", Label: "Vegan"}
	product := &entity.Product{ID: uuid.New(), MerchantID: uuid.New(), Name: "Oat Milk", Active: true, Tags: []*entity.DietaryTag{vegan}}

	f.productUC.EXPECT().
		ListProducts(mock.Anything, entity.ProductFilter{Query: "milk", TagCode: "vegan"}).
		Return([]*entity.Product{product}, nil)

	rec := f.do(http.MethodGet, "/products?q=milk&tag=vegan", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]handler.ProductResponse](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Oat Milk", got[0].Name)
	assert.Equal(t, "vegan", got[0].Tags[0].Code)
}

func TestAPI_ListMyProducts_RoutesBeforeID(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleMerchant}
	f.signIn(user)

	f.productUC.EXPECT().ListMyProducts(mock.Anything, user).Return([]*entity.Product{}, nil)

	rec := f.do(http.MethodGet, "/products/me", "", bearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[[]handler.ProductResponse](t, rec))
}

func TestAPI_ListProductsByMerchant(t *testing.T) {
	f := createTestAPI(t)
	merchantID := uuid.New()

	f.productUC.EXPECT().ListProductsByMerchant(mock.Anything, merchantID).Return([]*entity.Product{}, nil)

	rec := f.do(http.MethodGet, "/products/merchant/"+merchantID.String(), "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"meta":{"request_id":"req-42"}}`, rec.Body.String())
}

func TestAPI_UpdateProduct_DistinguishesOmittedAndEmptyTags(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantTags *[]string
	}{
		{"omitted tags", `{"name":"Barista Oat"}`, nil},
		{"null tags", `{"name":"Barista Oat","tags":null}`, nil},
		{"empty tags", `{"name":"Barista Oat","tags":[]}`, &[]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAPI(t)
			user := &entity.User{ID: uuid.New(), Role: entity.RoleMerchant}
			f.signIn(user)
			product := &entity.Product{ID: uuid.New(), Name: "Barista Oat"}

			f.productUC.EXPECT().
				UpdateProduct(mock.Anything, user, product.ID, mock.MatchedBy(func(input *usecase.UpdateProductInput) bool {
					return *input.Name == "Barista Oat" && assert.ObjectsAreEqual(tt.wantTags, input.TagCodes)
				})).
				Return(product, nil)

			rec := f.do(http.MethodPatch, "/products/"+product.ID.String(), tt.body, bearer)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAPI_UpdateProduct_NotOwner(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleMerchant}
	f.signIn(user)
	productID := uuid.New()

	f.productUC.EXPECT().UpdateProduct(mock.Anything, user, productID, mock.Anything).Return(nil, domainerrors.ErrNotProductOwner)

	rec := f.do(http.MethodPatch, "/products/"+productID.String(), `{"price":1}`, bearer)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "NOT_PRODUCT_OWNER", errInfo.Code)
	assert.Nil(t, errInfo.Details)
}

func TestAPI_DeleteProduct(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleMerchant}
	f.signIn(user)
	productID := uuid.New()

	f.productUC.EXPECT().DeleteProduct(mock.Anything, user, productID).Return(nil)

	rec := f.do(http.MethodDelete, "/products/"+productID.String(), "", bearer)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAPI_AddTags_AcceptsBothBodyShapes(t *testing.T) {
	for _, body := range []string{`["vegan","keto"]`, `{"tags":["vegan","keto"]}`} {
		t.Run(body, func(t *testing.T) {
			f := createTestAPI(t)
			user := &entity.User{ID: uuid.New(), Role: entity.RoleMerchant}
			f.signIn(user)
			product := &entity.Product{ID: uuid.New()}

			f.productUC.EXPECT().AddTags(mock.Anything, user, product.ID, []string{"vegan", "keto"}).Return(product, nil)

			rec := f.do(http.MethodPost, "/products/"+product.ID.String()+"/tags", body, bearer)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAPI_AddTags_RejectsMalformedBody(t *testing.T) {
	f := createTestAPI(t)
	f.signIn(&entity.User{ID: uuid.New(), Role: entity.RoleMerchant})

	rec := f.do(http.MethodPost, "/products/"+uuid.NewString()+"/tags", `"vegan"`, bearer)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_RemoveTag(t *testing.T) {
	f := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleMerchant}
	f.signIn(user)
	product := &entity.Product{ID: uuid.New()}

	f.productUC.EXPECT().RemoveTag(mock.Anything, user, product.ID, "vegan").Return(product, nil)

	rec := f.do(http.MethodDelete, "/products/"+product.ID.String()+"/tags/vegan", "", bearer)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_Tags(t *testing.T) {
	f := createTestAPI(t)
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	f.signIn(admin)
	tag := &entity.DietaryTag{ID: uuid.New(), Code: "vegan", Label: "Vegan"}

	f.tagUC.EXPECT().CreateTag(mock.Anything, admin, &usecase.TagInput{Code: "vegan", Label: "Vegan"}).Return(tag, nil)
	f.tagUC.EXPECT().ListTags(mock.Anything).Return([]*entity.DietaryTag{tag}, nil)
	f.tagUC.EXPECT().UpdateTag(mock.Anything, admin, tag.ID, &usecase.TagInput{Code: "vegan", Label: "Plant based"}).Return(tag, nil)
	f.tagUC.EXPECT().DeleteTag(mock.Anything, admin, tag.ID).Return(nil)

	assert.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/tags", `{"code":"vegan","label":"Vegan"}`, bearer).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/tags", "", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPut, "/tags/"+tag.ID.String(), `{"code":"vegan","label":"Plant based"}`, bearer).Code)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/tags/"+tag.ID.String(), "", bearer).Code)
}

func TestAPI_DeleteTag_Forbidden(t *testing.T) {
	f := createTestAPI(t)
	merchant := &entity.User{ID: uuid.New(), Role: entity.RoleMerchant}
	f.signIn(merchant)
	tagID := uuid.New()

	f.tagUC.EXPECT().DeleteTag(mock.Anything, merchant, tagID).Return(domainerrors.ErrForbidden.WithDetails("requires role admin"))

	rec := f.do(http.MethodDelete, "/tags/"+tagID.String(), "", bearer)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decodeError(t, rec).Details)
}

func TestAPI_Metrics(t *testing.T) {
	f := createTestAPI(t)
	f.tagUC.EXPECT().ListTags(mock.Anything).Return([]*entity.DietaryTag{}, nil)

	f.do(http.MethodGet, "/tags", "", "")
	rec := f.do(http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `marketplace_http_requests_total{method="GET",route="/tags",status="200"} 1`)
}

func TestAPI_UnknownRoute(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
}
