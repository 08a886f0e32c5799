package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/auth"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/observability"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/repository"
)

const testSessionCookie = "session-token"

// staticSessionRepo recognizes exactly one token.
type staticSessionRepo struct {
	token   string
	devotee *domain.Devotee
}

func (r *staticSessionRepo) Create(context.Context, *domain.Session) error { return nil }

func (r *staticSessionRepo) Lookup(_ context.Context, token string, _ time.Time) (*domain.Devotee, *domain.Session, error) {
	if token != r.token || r.devotee == nil {
		return nil, nil, repository.ErrSessionInvalid
	}
	return r.devotee, &domain.Session{Token: token, DevoteeID: r.devotee.ID}, nil
}

func (r *staticSessionRepo) Delete(context.Context, string) error { return nil }

func (r *staticSessionRepo) DeleteExpired(context.Context, time.Time) (int64, error) { return 0, nil }

type mapAdminStore struct {
	live map[string]bool
}

func (s *mapAdminStore) Put(_ context.Context, id string, _ time.Duration) error {
	s.live[id] = true
	return nil
}

func (s *mapAdminStore) Exists(_ context.Context, id string) (bool, error) {
	return s.live[id], nil
}

func (s *mapAdminStore) Delete(_ context.Context, id string) error {
	delete(s.live, id)
	return nil
}

func newTestApp(sessions repository.SessionRepository, admin *auth.AdminSessionManager) *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)

	sessionMw := auth.NewSessionMiddleware(sessions, testSessionCookie)
	adminMw := auth.NewAdminMiddleware(admin, "admin-session")
	app.Use(sessionMw.PageGuard)

	app.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	app.Get("/api/auth/me", sessionMw.RequireDevotee, func(c *fiber.Ctx) error {
		devotee, _ := auth.DevoteeFromContext(c)
		return c.JSON(fiber.Map{"success": true, "email": devotee.Email})
	})
	app.Get("/api/admin/business-submissions", adminMw.RequireAdmin, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	app.Get("/api/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})
	return app
}

func newTestAdminManager() *auth.AdminSessionManager {
	store := &mapAdminStore{live: make(map[string]bool)}
	return auth.NewAdminSessionManager(auth.NewAdminTokenManager("test-secret", time.Hour), store)
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode %q: %v", body, err)
	}
	return payload
}

func TestPageGuardRedirectsWithoutCookie(t *testing.T) {
	app := newTestApp(&staticSessionRepo{}, newTestAdminManager())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login?redirect=%2Fdashboard" {
		t.Fatalf("location = %q", loc)
	}
}

func TestPageGuardAcceptsAnyPresentCookie(t *testing.T) {
	// Presence only: even a stale cookie reaches the page; the API layer
	// rejects it on the data fetch.
	app := newTestApp(&staticSessionRepo{}, newTestAdminManager())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: "stale-token"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: "stale-token"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireDevoteeLoadsAccount(t *testing.T) {
	sessions := &staticSessionRepo{
		token:   "live-token",
		devotee: &domain.Devotee{ID: "dev-1", Email: "priya@example.org.nz", IsActive: true},
	}
	app := newTestApp(sessions, newTestAdminManager())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: "live-token"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	payload := decodeEnvelope(t, resp)
	if payload["email"] != "priya@example.org.nz" {
		t.Fatalf("payload = %v", payload)
	}

	// Bearer header works as an alternative to the cookie.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer live-token")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bearer status = %d, want 200", resp.StatusCode)
	}
}

func TestAdminRoutesRejectMissingSession(t *testing.T) {
	app := newTestApp(&staticSessionRepo{}, newTestAdminManager())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/business-submissions", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	payload := decodeEnvelope(t, resp)
	if payload["success"] != false {
		t.Fatalf("payload = %v", payload)
	}
	errBody, ok := payload["error"].(map[string]any)
	if !ok || errBody["code"] != "UNAUTHORIZED" {
		t.Fatalf("error = %v", payload["error"])
	}
}

func TestAdminRoutesAcceptLiveSession(t *testing.T) {
	admin := newTestAdminManager()
	app := newTestApp(&staticSessionRepo{}, admin)

	cookie, _, err := admin.Create(context.Background())
	if err != nil {
		t.Fatalf("create admin session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/business-submissions", nil)
	req.AddCookie(&http.Cookie{Name: "admin-session", Value: cookie})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	// Revoked server-side, the same cookie stops working.
	if err := admin.Clear(context.Background(), cookie); err != nil {
		t.Fatalf("clear: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/admin/business-submissions", nil)
	req.AddCookie(&http.Cookie{Name: "admin-session", Value: cookie})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status after revoke = %d, want 401", resp.StatusCode)
	}
}

func TestPanicsRenderEnvelope(t *testing.T) {
	app := newTestApp(&staticSessionRepo{}, newTestAdminManager())

	req := httptest.NewRequest(http.MethodGet, "/api/boom", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	payload := decodeEnvelope(t, resp)
	errBody, ok := payload["error"].(map[string]any)
	if !ok || errBody["code"] != "INTERNAL_ERROR" {
		t.Fatalf("error = %v", payload["error"])
	}
}
