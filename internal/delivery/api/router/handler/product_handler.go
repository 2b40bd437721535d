package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	MerchantID  string   `json:"merchant_id" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required,max=200"`
	Description *string  `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Tags        []string `json:"tags" validate:"dive,required"`
}

// UpdateProductRequest is a partial update: omitted fields stay untouched,
// and "tags": [] clears the tag set.
type UpdateProductRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Active      *bool     `json:"active"`
	Tags        *[]string `json:"tags" validate:"omitempty,dive,required"`
}

// addTagsObject is the object form of the add-tags body.
type addTagsObject struct {
	Tags []string `json:"tags"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	merchantID, err := uuid.Parse(req.MerchantID)
	if err != nil {
		return response.InvalidID(c, "merchant")
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), principal, &usecase.CreateProductInput{
		MerchantID:  merchantID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		TagCodes:    req.Tags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// ListProducts filters by ?q= (name substring, case-insensitive) and ?tag= (tag code).
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context(), entity.ProductFilter{
		Query:   c.QueryParam("q"),
		TagCode: c.QueryParam("tag"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "product")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) ListProductsByMerchant(c echo.Context) error {
	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "merchant")
	}

	products, err := h.productUC.ListProductsByMerchant(c.Request().Context(), merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	products, err := h.productUC.ListMyProducts(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "product")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), principal, productID, &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      req.Active,
		TagCodes:    req.Tags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "product")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), principal, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// AddTags accepts either a bare array of codes or {"tags": [...]}.
func (h *ProductHandler) AddTags(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "product")
	}

	codes, err := decodeTagCodes(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "Body must be a list of tag codes or {\"tags\": [...]}")
	}

	product, err := h.productUC.AddTags(c.Request().Context(), principal, productID, codes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) RemoveTag(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "product")
	}

	product, err := h.productUC.RemoveTag(c.Request().Context(), principal, productID, c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

func decodeTagCodes(body io.Reader) ([]string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)

	var codes []string
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &codes); err != nil {
			return nil, err
		}

		return codes, nil
	}

	var obj addTagsObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}

	return obj.Tags, nil
}
