package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/dto"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/service"
)

// TempleHandler exposes the public temple directory.
type TempleHandler struct {
	service *service.TempleService
}

// NewTempleHandler constructs handler.
func NewTempleHandler(templeService *service.TempleService) *TempleHandler {
	return &TempleHandler{service: templeService}
}

// List handles GET /api/temples.
func (h *TempleHandler) List(c *fiber.Ctx) error {
	var city *string
	if q := c.Query("city"); q != "" {
		city = &q
	}
	limit := parseLimit(c.Query("limit"), 20)

	temples, err := h.service.List(c.Context(), city, limit)
	if err != nil {
		return err
	}
	items := make([]dto.TempleResponse, 0, len(temples))
	for i := range temples {
		items = append(items, dto.NewTempleResponse(&temples[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Get handles GET /api/temples/:id.
func (h *TempleHandler) Get(c *fiber.Ctx) error {
	temple, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewTempleResponse(temple)})
}
