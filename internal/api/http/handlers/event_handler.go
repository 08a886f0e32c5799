package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/dto"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/auth"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/service"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

// EventHandler exposes the public event endpoints.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler constructs handler.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{service: eventService}
}

// Upcoming handles GET /api/events/upcoming.
func (h *EventHandler) Upcoming(c *fiber.Ctx) error {
	limit := parseLimit(c.Query("limit"), 20)
	list, err := h.service.Upcoming(c.Context(), limit)
	if err != nil {
		return err
	}
	items := make([]dto.EventResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.NewEventResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Submit handles POST /api/events for authenticated devotees.
func (h *EventHandler) Submit(c *fiber.Ctx) error {
	devotee, ok := auth.DevoteeFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.EventSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	startDate, err := time.Parse(dto.EventDateLayout, req.StartDate)
	if err != nil {
		return apperrors.NewValidationError("startDate must be YYYY-MM-DD", nil)
	}

	event, err := h.service.Submit(c.Context(), devotee.ID, service.EventSubmitInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Venue:        req.Venue,
		City:         req.City,
		StartDate:    startDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ContactEmail: req.ContactEmail,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"event":   dto.NewEventResponse(event),
	})
}

func parseLimit(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
