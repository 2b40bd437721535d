package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MerchantHandlerParams holds dependencies for MerchantHandler, injected by Fx.
type MerchantHandlerParams struct {
	fx.In

	MerchantUC usecase.MerchantUsecase
	Logger     *slog.Logger
}

// MerchantHandler holds dependencies for storefront handlers
type MerchantHandler struct {
	merchantUC usecase.MerchantUsecase
	logger     *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler
func NewMerchantHandler(params MerchantHandlerParams) *MerchantHandler {
	return &MerchantHandler{
		merchantUC: params.MerchantUC,
		logger:     params.Logger,
	}
}

// CreateMerchantRequest represents the request body for opening a storefront
type CreateMerchantRequest struct {
	StoreName string `json:"store_name" validate:"required,max=150"`
}

// CreateMerchant opens the principal's storefront
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	var req CreateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid merchant input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	merchant, err := h.merchantUC.CreateMerchant(c.Request().Context(), principal, &usecase.CreateMerchantInput{
		StoreName: req.StoreName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toMerchantResponse(merchant))
}

// GetMyMerchant returns the principal's storefront
func (h *MerchantHandler) GetMyMerchant(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	merchant, err := h.merchantUC.GetMyMerchant(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMerchantResponse(merchant))
}

// GetStorefrontQR renders the storefront QR code as a PNG
func (h *MerchantHandler) GetStorefrontQR(c echo.Context) error {
	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "merchant")
	}

	qr, err := h.merchantUC.GetStorefrontQR(c.Request().Context(), merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-Storefront-Url", qr.URL)

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}
