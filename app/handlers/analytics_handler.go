package handlers

import (
	"fmt"
	"strconv"

	"github.com/amirphl/linkbio/app/dto"
	"github.com/amirphl/linkbio/app/middleware"
	businessflow "github.com/amirphl/linkbio/business_flow"
	"github.com/amirphl/linkbio/utils"
	"github.com/gofiber/fiber/v3"
)

// AnalyticsHandlerInterface defines the owner-facing read side of click analytics
type AnalyticsHandlerInterface interface {
	ListClicks(c fiber.Ctx) error
	ItemCount(c fiber.Ctx) error
	ItemCounts(c fiber.Ctx) error
	Export(c fiber.Ctx) error
}

type AnalyticsHandler struct {
	flow businessflow.ClickAnalyticsFlow
}

func NewAnalyticsHandler(flow businessflow.ClickAnalyticsFlow) *AnalyticsHandler {
	return &AnalyticsHandler{flow: flow}
}

// ListClicks
// @Summary List clicks of a page
// @Description Entries are ordered by timestamp; from and to are inclusive epoch milliseconds.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Page slug"
// @Param from query integer false "From (ms since epoch)"
// @Param to query integer false "To (ms since epoch)"
// @Param limit query integer false "Max entries, 1 to 1000 (default 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListClicksResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/v1/analytics/{slug}/clicks [get]
func (h *AnalyticsHandler) ListClicks(c fiber.Ctx) error {
	owner, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Owner not found in context", "MISSING_OWNER_ID", nil)
	}
	from, to, err := parseRange(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid range", "INVALID_RANGE", err.Error())
	}
	req := &dto.ListClicksRequest{Slug: c.Params("slug"), From: from, To: to}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > utils.MaxClickPageSize {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid limit", "INVALID_LIMIT",
				fmt.Sprintf("limit must be between 1 and %d", utils.MaxClickPageSize))
		}
		req.Limit = limit
	}

	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/analytics/:slug/clicks", utils.DefaultRequestTimeout)
	defer cancel()

	res, err := h.flow.ListClicks(ctx, owner, req)
	if err != nil {
		return pageFlowError(c, err, "Failed to list clicks", "LIST_CLICKS_FAILED")
	}
	return successResponse(c, fiber.StatusOK, "Clicks retrieved successfully", res)
}

// ItemCount
// @Summary Click count of one item
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Page slug"
// @Param itemId path string true "Item id"
// @Success 200 {object} dto.APIResponse{data=dto.ItemClickCountResponse}
// @Router /api/v1/analytics/{slug}/items/{itemId}/count [get]
func (h *AnalyticsHandler) ItemCount(c fiber.Ctx) error {
	owner, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Owner not found in context", "MISSING_OWNER_ID", nil)
	}
	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/analytics/:slug/items/:itemId/count", utils.DefaultRequestTimeout)
	defer cancel()

	res, err := h.flow.ItemClickCount(ctx, owner, c.Params("slug"), c.Params("itemId"))
	if err != nil {
		return pageFlowError(c, err, "Failed to read item count", "ITEM_COUNT_FAILED")
	}
	return successResponse(c, fiber.StatusOK, "Item count retrieved successfully", res)
}

// ItemCounts
// @Summary Click counts of several items
// @Description Without item_ids the counts of every link on the page are returned.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Page slug"
// @Param item_ids query string false "Comma separated item ids"
// @Success 200 {object} dto.APIResponse{data=dto.ItemClickCountsResponse}
// @Router /api/v1/analytics/{slug}/counts [get]
func (h *AnalyticsHandler) ItemCounts(c fiber.Ctx) error {
	owner, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Owner not found in context", "MISSING_OWNER_ID", nil)
	}
	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/analytics/:slug/counts", utils.DefaultRequestTimeout)
	defer cancel()

	res, err := h.flow.ItemClickCounts(ctx, owner, c.Params("slug"), utils.SplitNonEmpty(c.Query("item_ids")))
	if err != nil {
		return pageFlowError(c, err, "Failed to read item counts", "ITEM_COUNT_FAILED")
	}
	return successResponse(c, fiber.StatusOK, "Item counts retrieved successfully", res)
}

// Export
// @Summary Export clicks as xlsx
// @Description At most 100000 oldest clicks of the range are written. When more exist the
// @Description response carries X-Export-Truncated: true; narrow the range to fetch the rest.
// @Tags Analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param slug path string true "Page slug"
// @Param from query integer false "From (ms since epoch)"
// @Param to query integer false "To (ms since epoch)"
// @Success 200 {file} file
// @Header 200 {string} X-Export-Truncated "true when the range held more clicks than were exported"
// @Router /api/v1/analytics/{slug}/export [get]
func (h *AnalyticsHandler) Export(c fiber.Ctx) error {
	owner, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Owner not found in context", "MISSING_OWNER_ID", nil)
	}
	from, to, err := parseRange(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid range", "INVALID_RANGE", err.Error())
	}

	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/analytics/:slug/export", utils.DefaultRequestTimeout)
	defer cancel()

	export, err := h.flow.ExportClicksExcel(ctx, owner, c.Params("slug"), from, to)
	if err != nil {
		return pageFlowError(c, err, "Failed to export clicks", "EXPORT_CLICKS_FAILED")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Set(utils.ExportTruncatedHeader, strconv.FormatBool(export.Truncated))
	return c.Status(fiber.StatusOK).Send(export.Data)
}

func parseRange(c fiber.Ctx) (from, to *int64, err error) {
	if from, err = parseMillis(c.Query("from")); err != nil {
		return nil, nil, fmt.Errorf("from: %w", err)
	}
	if to, err = parseMillis(c.Query("to")); err != nil {
		return nil, nil, fmt.Errorf("to: %w", err)
	}
	return from, to, nil
}

func parseMillis(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	if v < 0 {
		return nil, fmt.Errorf("must not be negative")
	}
	return &v, nil
}
