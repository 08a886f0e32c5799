package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/dto"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/auth"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/config"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/service"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

// AuthHandler exposes devotee account endpoints.
type AuthHandler struct {
	auth *service.AuthService
	cfg  config.AuthConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{auth: authService, cfg: cfg}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return apperrors.NewValidationError("email, password, firstName required", nil)
	}
	if len(req.Password) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters", nil)
	}

	devotee, session, err := h.auth.Register(c.Context(), service.RegisterInput{
		Email:              req.Email,
		Password:           req.Password,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		SpiritualName:      req.SpiritualName,
		City:               req.City,
		Bio:                req.Bio,
		Interests:          req.Interests,
		SpiritualPractices: req.SpiritualPractices,
	})
	if err != nil {
		return err
	}

	h.setSessionCookie(c, session)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"devotee": dto.NewDevoteeResponse(devotee),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	devotee, session, err := h.auth.Login(c.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, session)
	return c.JSON(fiber.Map{
		"success": true,
		"devotee": dto.NewDevoteeResponse(devotee),
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(h.cfg.SessionCookieName)
	if err := h.auth.Logout(c.Context(), token); err != nil {
		return err
	}
	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{"success": true})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	devotee, ok := auth.DevoteeFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"devotee": dto.NewDevoteeResponse(devotee),
	})
}

// UpdateMe handles PUT /api/auth/me.
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	devotee, ok := auth.DevoteeFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.auth.UpdateProfile(c.Context(), devotee.ID, service.ProfileUpdateInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		SpiritualName:      req.SpiritualName,
		City:               req.City,
		Bio:                req.Bio,
		Interests:          req.Interests,
		SpiritualPractices: req.SpiritualPractices,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"devotee": dto.NewDevoteeResponse(updated),
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, session *domain.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cfg.SessionCookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.SessionCookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
