package handlers

import (
	"errors"
	"log"

	"github.com/amirphl/linkbio/app/dto"
	"github.com/amirphl/linkbio/app/middleware"
	businessflow "github.com/amirphl/linkbio/business_flow"
	"github.com/amirphl/linkbio/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// PageHandlerInterface defines the contract for page configuration handlers
type PageHandlerInterface interface {
	Get(c fiber.Ctx) error
	ListMine(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	AddLink(c fiber.Ctx) error
	UpdateLink(c fiber.Ctx) error
	DeleteLink(c fiber.Ctx) error
}

type PageHandler struct {
	flow      businessflow.PageFlow
	validator *validator.Validate
}

func NewPageHandler(flow businessflow.PageFlow) *PageHandler {
	return &PageHandler{
		flow:      flow,
		validator: newValidator(),
	}
}

// Get Page
// @Summary Get a published page
// @Tags Pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} dto.APIResponse{data=dto.PageDTO}
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/pages/{slug} [get]
func (h *PageHandler) Get(c fiber.Ctx) error {
	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/pages/:slug", utils.DefaultRequestTimeout)
	defer cancel()

	page, err := h.flow.GetPage(ctx, c.Params("slug"))
	if err != nil {
		return pageFlowError(c, err, "Failed to get page", "GET_PAGE_FAILED")
	}
	return successResponse(c, fiber.StatusOK, "Page retrieved successfully", page)
}

// ListMine Pages
// @Summary List the caller's pages
// @Tags Pages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PageDTO}
// @Failure 401 {object} dto.APIResponse
// @Router /api/v1/pages [get]
func (h *PageHandler) ListMine(c fiber.Ctx) error {
	owner, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Owner not found in context", "MISSING_OWNER_ID", nil)
	}
	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/pages", utils.DefaultRequestTimeout)
	defer cancel()

	pages, err := h.flow.ListOwnerPages(ctx, owner)
	if err != nil {
		return pageFlowError(c, err, "Failed to list pages", "LIST_PAGES_FAILED")
	}
	return successResponse(c, fiber.StatusOK, "Pages retrieved successfully", pages)
}

// Create Page
// @Summary Create a page
// @Tags Pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePageRequest true "Page"
// @Success 201 {object} dto.APIResponse{data=dto.PageDTO}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Slug already taken"
// @Router /api/v1/pages [post]
func (h *PageHandler) Create(c fiber.Ctx) error {
	owner, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Owner not found in context", "MISSING_OWNER_ID", nil)
	}
	var req dto.CreatePageRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", fieldErrors(err))
	}

	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/pages", utils.DefaultRequestTimeout)
	defer cancel()

	page, err := h.flow.CreatePage(ctx, owner, &req)
	if err != nil {
		return pageFlowError(c, err, "Failed to create page", "PAGE_CREATE_FAILED")
	}
	return successResponse(c, fiber.StatusCreated, "Page created successfully", page)
}

// AddLink
// @Summary Add a link to a page
// @Description The URL must satisfy the chosen preset.
// @Tags Pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Page slug"
// @Param request body dto.PageLinkRequest true "Link"
// @Success 201 {object} dto.APIResponse{data=dto.PageLinkDTO}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/pages/{slug}/links [post]
func (h *PageHandler) AddLink(c fiber.Ctx) error {
	owner, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Owner not found in context", "MISSING_OWNER_ID", nil)
	}
	req, err := h.bindLink(c)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/pages/:slug/links", utils.DefaultRequestTimeout)
	defer cancel()

	link, err := h.flow.AddLink(ctx, owner, c.Params("slug"), req)
	if err != nil {
		return pageFlowError(c, err, "Failed to add link", "PAGE_LINK_CREATE_FAILED")
	}
	return successResponse(c, fiber.StatusCreated, "Link added successfully", link)
}

// UpdateLink
// @Summary Replace a page link
// @Tags Pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Page slug"
// @Param uuid path string true "Link UUID"
// @Param request body dto.PageLinkRequest true "Link"
// @Success 200 {object} dto.APIResponse{data=dto.PageLinkDTO}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/pages/{slug}/links/{uuid} [put]
func (h *PageHandler) UpdateLink(c fiber.Ctx) error {
	owner, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Owner not found in context", "MISSING_OWNER_ID", nil)
	}
	linkUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid link UUID", "INVALID_LINK_UUID", nil)
	}
	req, err := h.bindLink(c)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/pages/:slug/links/:uuid", utils.DefaultRequestTimeout)
	defer cancel()

	link, err := h.flow.UpdateLink(ctx, owner, c.Params("slug"), linkUUID, req)
	if err != nil {
		return pageFlowError(c, err, "Failed to update link", "PAGE_LINK_UPDATE_FAILED")
	}
	return successResponse(c, fiber.StatusOK, "Link updated successfully", link)
}

// DeleteLink
// @Summary Delete a page link
// @Description Recorded clicks of the link are kept.
// @Tags Pages
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Page slug"
// @Param uuid path string true "Link UUID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/pages/{slug}/links/{uuid} [delete]
func (h *PageHandler) DeleteLink(c fiber.Ctx) error {
	owner, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Owner not found in context", "MISSING_OWNER_ID", nil)
	}
	linkUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid link UUID", "INVALID_LINK_UUID", nil)
	}

	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/pages/:slug/links/:uuid", utils.DefaultRequestTimeout)
	defer cancel()

	if err := h.flow.DeleteLink(ctx, owner, c.Params("slug"), linkUUID); err != nil {
		return pageFlowError(c, err, "Failed to delete link", "PAGE_LINK_DELETE_FAILED")
	}
	return successResponse(c, fiber.StatusOK, "Link deleted successfully", nil)
}

// bindLink decodes and validates a link body. A nil request with nil error means the response was already written.
func (h *PageHandler) bindLink(c fiber.Ctx) (*dto.PageLinkRequest, error) {
	var req dto.PageLinkRequest
	if err := c.Bind().JSON(&req); err != nil {
		return nil, errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return nil, errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", fieldErrors(err))
	}
	return &req, nil
}

// pageFlowError maps page and analytics flow errors onto HTTP statuses
func pageFlowError(c fiber.Ctx, err error, message, code string) error {
	switch {
	case businessflow.IsPageNotFound(err):
		return errorResponse(c, fiber.StatusNotFound, "Page not found", "PAGE_NOT_FOUND", nil)
	case businessflow.IsPageAccessDenied(err):
		return errorResponse(c, fiber.StatusForbidden, "Page belongs to another owner", "PAGE_ACCESS_DENIED", nil)
	case businessflow.IsPageLinkNotFound(err):
		return errorResponse(c, fiber.StatusNotFound, "Link not found", "PAGE_LINK_NOT_FOUND", nil)
	case businessflow.IsSlugAlreadyExists(err):
		return errorResponse(c, fiber.StatusConflict, "Slug already taken", "SLUG_ALREADY_EXISTS", nil)
	}

	var be *businessflow.BusinessError
	if businessflow.IsValidationError(err) {
		code := "VALIDATION_ERROR"
		if errors.As(err, &be) {
			code = be.Code
		}
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", code, err.Error())
	}

	log.Printf("%s request_id=%s: %v", message, requestID(c), err)
	if errors.As(err, &be) {
		code = be.Code
	}
	return errorResponse(c, fiber.StatusInternalServerError, message, code, nil)
}
