package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/dto"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/service"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

// BusinessHandler exposes the public business endpoints.
type BusinessHandler struct {
	service *service.BusinessService
}

// NewBusinessHandler constructs handler.
func NewBusinessHandler(businessService *service.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: businessService}
}

// Register handles POST /api/business/register.
func (h *BusinessHandler) Register(c *fiber.Ctx) error {
	var req dto.BusinessRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	sub, err := h.service.Submit(c.Context(), service.BusinessSubmitInput{
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
		Images:         req.Images,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"businessId": sub.ID,
			"status":     string(sub.Status),
		},
	})
}

// ListApproved handles GET /api/business/approved.
func (h *BusinessHandler) ListApproved(c *fiber.Ctx) error {
	listings, err := h.service.ListApproved(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.BusinessResponse, 0, len(listings))
	for i := range listings {
		items = append(items, dto.NewBusinessResponse(&listings[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Get handles GET /api/business/:id for approved, active listings.
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	listing, err := h.service.GetApproved(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewBusinessResponse(listing)})
}
