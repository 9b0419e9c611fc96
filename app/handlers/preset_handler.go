package handlers

import (
	"github.com/amirphl/linkbio/app/dto"
	"github.com/amirphl/linkbio/utils"
	"github.com/gofiber/fiber/v3"
)

// PresetHandlerInterface exposes the preset catalogue and the URL check used by page editors
type PresetHandlerInterface interface {
	List(c fiber.Ctx) error
	Validate(c fiber.Ctx) error
}

type PresetHandler struct{}

func NewPresetHandler() *PresetHandler {
	return &PresetHandler{}
}

// List Presets
// @Summary List link presets
// @Tags Presets
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListPresetsResponse}
// @Router /api/v1/presets [get]
func (h *PresetHandler) List(c fiber.Ctx) error {
	rules := utils.PresetRules()
	res := dto.ListPresetsResponse{Presets: make([]dto.PresetDTO, 0, len(rules))}
	for _, r := range rules {
		res.Presets = append(res.Presets, dto.PresetDTO{
			Preset:   r.Preset.String(),
			Prefixes: r.Prefixes,
			Pattern:  r.Pattern,
		})
	}
	return successResponse(c, fiber.StatusOK, "Presets retrieved successfully", res)
}

// Validate Preset URL
// @Summary Check a URL against a preset
// @Description Unknown presets fall back to the general URL rule. Never errors on bad input, it answers valid=false.
// @Tags Presets
// @Accept json
// @Produce json
// @Param request body dto.ValidatePresetURLRequest true "URL and preset"
// @Success 200 {object} dto.APIResponse{data=dto.ValidatePresetURLResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /api/v1/presets/validate [post]
func (h *PresetHandler) Validate(c fiber.Ctx) error {
	var req dto.ValidatePresetURLRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	res := dto.ValidatePresetURLResponse{Valid: utils.ValidatePresetURL(req.URL, req.Preset)}
	return successResponse(c, fiber.StatusOK, "Validation completed", res)
}
