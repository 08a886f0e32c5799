package auth

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/repository"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

const devoteeKey = "auth_devotee"

// ProtectedPagePrefixes lists browser paths that require a session cookie.
var ProtectedPagePrefixes = []string{
	"/dashboard",
	"/profile",
	"/events/create",
	"/temples/add",
	"/community/discussions/new",
}

// SessionMiddleware gates devotee-facing routes.
type SessionMiddleware struct {
	sessions   repository.SessionRepository
	cookieName string
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(sessions repository.SessionRepository, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, cookieName: cookieName}
}

// PageGuard redirects unauthenticated browsers away from protected pages.
// It checks cookie presence only; expiry and account state are validated by
// the API layer on the subsequent data fetch. An expired-but-present cookie
// passes here and is rejected there.
func (m *SessionMiddleware) PageGuard(c *fiber.Ctx) error {
	path := c.Path()
	for _, prefix := range ProtectedPagePrefixes {
		if strings.HasPrefix(path, prefix) {
			if c.Cookies(m.cookieName) == "" {
				return c.Redirect("/login?redirect="+url.QueryEscape(path), fiber.StatusFound)
			}
			break
		}
	}
	return c.Next()
}

// RequireDevotee fully validates the session and loads the devotee.
// It fails closed: unknown token, expired session, and deactivated account
// all read as unauthorized.
func (m *SessionMiddleware) RequireDevotee(c *fiber.Ctx) error {
	token := m.tokenFromRequest(c)
	if token == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	devotee, _, err := m.sessions.Lookup(c.Context(), token, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrSessionInvalid) {
			return apperrors.NewUnauthorized("session invalid or expired")
		}
		return apperrors.MapError(err)
	}

	c.Locals(devoteeKey, devotee)
	return c.Next()
}

func (m *SessionMiddleware) tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(m.cookieName); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// SessionToken returns the raw token attached to the request, if any.
func (m *SessionMiddleware) SessionToken(c *fiber.Ctx) string {
	return m.tokenFromRequest(c)
}

// DevoteeFromContext retrieves the authenticated devotee.
func DevoteeFromContext(c *fiber.Ctx) (*domain.Devotee, bool) {
	val := c.Locals(devoteeKey)
	if val == nil {
		return nil, false
	}
	devotee, ok := val.(*domain.Devotee)
	return devotee, ok
}

// AdminMiddleware gates moderation routes behind the shared-secret cookie.
type AdminMiddleware struct {
	sessions   *AdminSessionManager
	cookieName string
}

// NewAdminMiddleware constructs middleware.
func NewAdminMiddleware(sessions *AdminSessionManager, cookieName string) *AdminMiddleware {
	return &AdminMiddleware{sessions: sessions, cookieName: cookieName}
}

// RequireAdmin rejects requests without a live admin session. Failures never
// leak which check failed.
func (m *AdminMiddleware) RequireAdmin(c *fiber.Ctx) error {
	cookie := c.Cookies(m.cookieName)
	if !m.sessions.Validate(c.Context(), cookie) {
		return apperrors.NewUnauthorized("admin authentication required")
	}
	return c.Next()
}
