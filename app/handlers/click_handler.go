package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/amirphl/linkbio/app/dto"
	businessflow "github.com/amirphl/linkbio/business_flow"
	"github.com/amirphl/linkbio/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ClickHandlerInterface defines the contract for the public click ingestion endpoint
type ClickHandlerInterface interface {
	Record(c fiber.Ctx) error
	MethodNotAllowed(c fiber.Ctx) error
}

// ClickHandler accepts clicks from published pages
type ClickHandler struct {
	flow      businessflow.ClickRecorderFlow
	validator *validator.Validate
}

func NewClickHandler(flow businessflow.ClickRecorderFlow) *ClickHandler {
	return &ClickHandler{
		flow:      flow,
		validator: newValidator(),
	}
}

// Record Click
// @Summary Record a click
// @Description Appends the click to the page's analytics log and increments the item counter. Not retried server-side.
// @Tags Clicks
// @Accept json
// @Produce json
// @Param request body dto.RecordClickRequest true "Click payload"
// @Success 200 {object} dto.ClickIngestResponse "Click recorded"
// @Failure 400 {object} dto.ClickIngestResponse "Schema violation"
// @Failure 405 {object} dto.ClickIngestResponse "Method not allowed"
// @Failure 500 {object} dto.ClickIngestResponse "Click store failure, retry is up to the caller"
// @Router /api/v1/clicks [post]
func (h *ClickHandler) Record(c fiber.Ctx) error {
	var req dto.RecordClickRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ClickIngestResponse{
			Error:   "Invalid request body",
			Details: decodeErrorDetails(err),
		})
	}
	req.Slug = strings.TrimSpace(req.Slug)
	req.ItemID = strings.TrimSpace(req.ItemID)

	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ClickIngestResponse{
			Error:   "Validation failed",
			Details: fieldErrors(err),
		})
	}

	ctx, cancel := createRequestContextWithTimeout(c, "/api/v1/clicks", utils.IngestRequestTimeout)
	defer cancel()

	if err := h.flow.Record(ctx, &req); err != nil {
		if businessflow.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ClickIngestResponse{
				Error:   "Validation failed",
				Details: []dto.FieldError{{Message: err.Error()}},
			})
		}
		log.Printf("Record click failed request_id=%s slug=%s item=%s: %v", requestID(c), req.Slug, req.ItemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ClickIngestResponse{
			Error: "Failed to record click",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ClickIngestResponse{Success: true})
}

// MethodNotAllowed answers every verb other than POST on the ingestion path
func (h *ClickHandler) MethodNotAllowed(c fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ClickIngestResponse{
		Error:   "Method not allowed",
		Details: fiber.Map{"allowed": []string{fiber.MethodPost}},
	})
}

func decodeErrorDetails(err error) []dto.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []dto.FieldError{{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be of type " + typeErr.Type.String(),
		}}
	}
	return []dto.FieldError{{Message: err.Error()}}
}
