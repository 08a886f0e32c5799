package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/api/dto"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/auth"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/config"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

// AdminAuthHandler manages the shared-secret admin session.
type AdminAuthHandler struct {
	sessions *auth.AdminSessionManager
	cfg      config.AdminConfig
	logger   *zap.Logger
}

// NewAdminAuthHandler constructs handler.
func NewAdminAuthHandler(sessions *auth.AdminSessionManager, cfg config.AdminConfig, logger *zap.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{sessions: sessions, cfg: cfg, logger: logger}
}

// Authenticate handles POST /api/admin/auth: password login, or
// action=logout to revoke the current session.
func (h *AdminAuthHandler) Authenticate(c *fiber.Ctx) error {
	var req dto.AdminAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if req.Action == "logout" {
		cookie := c.Cookies(h.cfg.CookieName)
		if err := h.sessions.Clear(c.Context(), cookie); err != nil {
			h.logger.Warn("admin session revoke failed", zap.Error(err))
		}
		h.clearCookie(c)
		return c.JSON(fiber.Map{"success": true})
	}

	if !auth.VerifyAdminPassword(h.cfg.Password, req.Password) {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := h.sessions.Create(c.Context())
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminAuthHandler) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
