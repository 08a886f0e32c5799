package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/dto"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/service"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

// AdminEventHandler exposes the event moderation endpoints.
type AdminEventHandler struct {
	service *service.EventService
}

// NewAdminEventHandler constructs handler.
func NewAdminEventHandler(eventService *service.EventService) *AdminEventHandler {
	return &AdminEventHandler{service: eventService}
}

// List handles GET /api/admin/event-submissions.
func (h *AdminEventHandler) List(c *fiber.Ctx) error {
	var status *domain.SubmissionStatus
	if q := c.Query("status"); q != "" {
		s := domain.SubmissionStatus(q)
		status = &s
	}

	list, stats, err := h.service.List(c.Context(), status)
	if err != nil {
		return err
	}
	items := make([]dto.EventResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.NewEventResponse(&list[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"events": items,
			"stats":  dto.NewStatsResponse(stats),
		},
	})
}

// Get handles GET /api/admin/event-submissions/:id.
func (h *AdminEventHandler) Get(c *fiber.Ctx) error {
	event, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "event": dto.NewEventResponse(event)})
}

// Act handles PUT /api/admin/event-submissions/:id with
// action=approve|reject|update (JSON or form-encoded).
func (h *AdminEventHandler) Act(c *fiber.Ctx) error {
	var req dto.EventActionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	id := c.Params("id")
	switch req.Action {
	case "approve":
		event, err := h.service.Approve(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "event": dto.NewEventResponse(event)})
	case "reject":
		event, err := h.service.Reject(c.Context(), id, req.ReviewNotes)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "event": dto.NewEventResponse(event)})
	case "update":
		input, err := eventUpdateInput(req)
		if err != nil {
			return err
		}
		event, err := h.service.Update(c.Context(), id, input)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "event": dto.NewEventResponse(event)})
	default:
		return apperrors.NewValidationError("action must be approve, reject, or update", map[string]any{"action": req.Action})
	}
}

// Delete handles DELETE /api/admin/event-submissions/:id as a soft delete.
func (h *AdminEventHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.SoftDelete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func eventUpdateInput(req dto.EventActionRequest) (service.EventUpdateInput, error) {
	input := service.EventUpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Venue:        req.Venue,
		City:         req.City,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ContactEmail: req.ContactEmail,
		ImageURL:     req.ImageURL,
	}
	if req.StartDate != nil {
		parsed, err := time.Parse(dto.EventDateLayout, *req.StartDate)
		if err != nil {
			return service.EventUpdateInput{}, apperrors.NewValidationError("startDate must be YYYY-MM-DD", nil)
		}
		input.StartDate = &parsed
	}
	return input, nil
}
