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

// TagHandlerParams holds dependencies for TagHandler, injected by Fx.
type TagHandlerParams struct {
	fx.In

	TagUC  usecase.TagUsecase
	Logger *slog.Logger
}

// TagHandler holds dependencies for dietary tag handlers
type TagHandler struct {
	tagUC  usecase.TagUsecase
	logger *slog.Logger
}

// NewTagHandler is the constructor for TagHandler
func NewTagHandler(params TagHandlerParams) *TagHandler {
	return &TagHandler{
		tagUC:  params.TagUC,
		logger: params.Logger,
	}
}

// TagRequest represents the request body for creating or updating a tag
type TagRequest struct {
	Code  string `json:"code" validate:"required,max=64"`
	Label string `json:"label" validate:"required,max=150"`
}

func (h *TagHandler) CreateTag(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tag input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	tag, err := h.tagUC.CreateTag(c.Request().Context(), principal, &usecase.TagInput{Code: req.Code, Label: req.Label})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toTagResponse(tag))
}

func (h *TagHandler) ListTags(c echo.Context) error {
	tags, err := h.tagUC.ListTags(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTagResponses(tags))
}

func (h *TagHandler) UpdateTag(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "tag")
	}

	var req TagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tag input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	tag, err := h.tagUC.UpdateTag(c.Request().Context(), principal, tagID, &usecase.TagInput{Code: req.Code, Label: req.Label})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTagResponse(tag))
}

func (h *TagHandler) DeleteTag(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidID(c, "tag")
	}

	if err := h.tagUC.DeleteTag(c.Request().Context(), principal, tagID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
