package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/dto"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/service"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

// AdminBusinessHandler exposes the business moderation endpoints.
type AdminBusinessHandler struct {
	service *service.BusinessService
}

// NewAdminBusinessHandler constructs handler.
func NewAdminBusinessHandler(businessService *service.BusinessService) *AdminBusinessHandler {
	return &AdminBusinessHandler{service: businessService}
}

// ListSubmissions handles GET /api/admin/business-submissions.
func (h *AdminBusinessHandler) ListSubmissions(c *fiber.Ctx) error {
	var status *domain.SubmissionStatus
	if q := c.Query("status"); q != "" {
		s := domain.SubmissionStatus(q)
		status = &s
	}

	subs, stats, err := h.service.ListSubmissions(c.Context(), status)
	if err != nil {
		return err
	}
	items := make([]dto.SubmissionResponse, 0, len(subs))
	for i := range subs {
		items = append(items, dto.NewSubmissionResponse(&subs[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"submissions": items,
			"stats":       dto.NewStatsResponse(stats),
		},
	})
}

// ReviewSubmission handles PATCH /api/admin/business-submissions/:id.
// The body carries the target status (approved or rejected) and optional notes.
func (h *AdminBusinessHandler) ReviewSubmission(c *fiber.Ctx) error {
	var req dto.SubmissionReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	id := c.Params("id")
	switch domain.SubmissionStatus(req.Status) {
	case domain.SubmissionStatusApproved:
		listing, err := h.service.Approve(c.Context(), id)
		if err != nil {
			return err
		}
		sub, err := h.service.GetSubmission(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"submission": dto.NewSubmissionResponse(sub),
				"listing": fiber.Map{
					"id":         listing.ID,
					"isActive":   listing.IsActive,
					"rating":     listing.Rating,
					"approvedAt": listing.ApprovedAt,
				},
			},
		})
	case domain.SubmissionStatusRejected:
		if err := h.service.Reject(c.Context(), id, req.ReviewNotes); err != nil {
			return err
		}
		sub, err := h.service.GetSubmission(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    fiber.Map{"submission": dto.NewSubmissionResponse(sub)},
		})
	default:
		return apperrors.NewValidationError("status must be approved or rejected", map[string]any{"status": req.Status})
	}
}

// UpdateBusiness handles PATCH /api/admin/businesses/:id.
func (h *AdminBusinessHandler) UpdateBusiness(c *fiber.Ctx) error {
	var req dto.BusinessUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	sub, err := h.service.Update(c.Context(), c.Params("id"), service.BusinessUpdateInput{
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		Address:        req.Address,
		City:           req.City,
		Phone:          req.Phone,
		Email:          req.Email,
		Website:        req.Website,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		OwnerPhone:     req.OwnerPhone,
		Services:       req.Services,
		SocialLinks:    req.SocialLinks,
		OperatingHours: req.OperatingHours,
		SpecialOffers:  req.SpecialOffers,
		KeepImageURLs:  req.CurrentImages,
		NewImageURLs:   req.NewImages,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewSubmissionResponse(sub)})
}

// DelistBusiness handles DELETE /api/admin/businesses/:id. The listing goes
// inactive; the submission keeps its approved status.
func (h *AdminBusinessHandler) DelistBusiness(c *fiber.Ctx) error {
	if err := h.service.Delist(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
