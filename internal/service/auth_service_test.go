package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/config"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/repository"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

type fakeDevoteeRepo struct {
	mu       sync.Mutex
	nextID   int
	byID     map[string]*domain.Devotee
	byEmail  map[string]string
}

func newFakeDevoteeRepo() *fakeDevoteeRepo {
	return &fakeDevoteeRepo{byID: make(map[string]*domain.Devotee), byEmail: make(map[string]string)}
}

func (f *fakeDevoteeRepo) Create(_ context.Context, devotee *domain.Devotee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	devotee.ID = fmt.Sprintf("dev-%d", f.nextID)
	devotee.CreatedAt = time.Now()
	copied := *devotee
	f.byID[devotee.ID] = &copied
	f.byEmail[devotee.Email] = devotee.ID
	return nil
}

func (f *fakeDevoteeRepo) Update(_ context.Context, devotee *domain.Devotee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[devotee.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *devotee
	f.byID[devotee.ID] = &copied
	return nil
}

func (f *fakeDevoteeRepo) GetByID(_ context.Context, id string) (*domain.Devotee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	devotee, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *devotee
	return &copied, nil
}

func (f *fakeDevoteeRepo) GetByEmail(_ context.Context, email string) (*domain.Devotee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *f.byID[id]
	return &copied, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	devotees *fakeDevoteeRepo
	sessions map[string]*domain.Session
}

func newFakeSessionRepo(devotees *fakeDevoteeRepo) *fakeSessionRepo {
	return &fakeSessionRepo{devotees: devotees, sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session.CreatedAt = time.Now()
	copied := *session
	f.sessions[session.Token] = &copied
	return nil
}

func (f *fakeSessionRepo) Lookup(ctx context.Context, token string, now time.Time) (*domain.Devotee, *domain.Session, error) {
	f.mu.Lock()
	session, ok := f.sessions[token]
	if ok && session.Expired(now) {
		delete(f.sessions, token)
		ok = false
	}
	f.mu.Unlock()
	if !ok {
		return nil, nil, repository.ErrSessionInvalid
	}
	devotee, err := f.devotees.GetByID(ctx, session.DevoteeID)
	if err != nil || !devotee.IsActive {
		return nil, nil, repository.ErrSessionInvalid
	}
	copied := *session
	return devotee, &copied, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for token, session := range f.sessions {
		if session.Expired(now) {
			delete(f.sessions, token)
			n++
		}
	}
	return n, nil
}

func newAuthFixture() (*AuthService, *fakeDevoteeRepo, *fakeSessionRepo) {
	devotees := newFakeDevoteeRepo()
	sessions := newFakeSessionRepo(devotees)
	cfg := config.Config{
		Auth: config.AuthConfig{
			// The minimum cost keeps the bcrypt tests fast.
			BcryptCost:         4,
			SessionTTLHours:    24,
			RememberMeTTLHours: 720,
		},
	}
	return NewAuthService(cfg, AuthDependencies{DevoteeRepo: devotees, SessionRepo: sessions}), devotees, sessions
}

func registerDevotee(t *testing.T, svc *AuthService, email string) (*domain.Devotee, *domain.Session) {
	t.Helper()
	devotee, session, err := svc.Register(context.Background(), RegisterInput{
		Email:     email,
		Password:  "namaste108",
		FirstName: "Priya",
		LastName:  "Sharma",
		City:      "Wellington",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return devotee, session
}

func TestRegisterNormalizesEmailAndIssuesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()

	devotee, session := registerDevotee(t, svc, "  Priya@Example.ORG.nz ")
	if devotee.Email != "priya@example.org.nz" {
		t.Fatalf("email = %q", devotee.Email)
	}
	if !devotee.IsActive {
		t.Fatal("new accounts must start active")
	}
	if devotee.PasswordHash == "namaste108" {
		t.Fatal("password stored in plaintext")
	}
	if session.Token == "" {
		t.Fatal("expected session token")
	}
	if _, ok := sessions.sessions[session.Token]; !ok {
		t.Fatal("session not persisted")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newAuthFixture()
	registerDevotee(t, svc, "priya@example.org.nz")

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:     "PRIYA@example.org.nz",
		Password:  "another-pass",
		FirstName: "Priya",
	})
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, devotees, _ := newAuthFixture()
	devotee, _ := registerDevotee(t, svc, "priya@example.org.nz")

	// Unknown email, wrong password, and a deactivated account must all
	// produce the same generic unauthorized error.
	cases := []struct {
		name     string
		email    string
		password string
		prepare  func()
	}{
		{name: "unknown email", email: "nobody@example.org.nz", password: "namaste108"},
		{name: "wrong password", email: "priya@example.org.nz", password: "wrong"},
		{name: "deactivated account", email: "priya@example.org.nz", password: "namaste108", prepare: func() {
			stored := devotees.byID[devotee.ID]
			stored.IsActive = false
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.prepare != nil {
				tc.prepare()
			}
			_, _, err := svc.Login(context.Background(), tc.email, tc.password, false)
			var de *apperrors.DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected DomainError, got %v", err)
			}
			if de.Code != "UNAUTHORIZED" || de.Message != "invalid credentials" {
				t.Fatalf("got %q %q", de.Code, de.Message)
			}
		})
	}
}

func TestLoginRememberMeExtendsSession(t *testing.T) {
	svc, _, _ := newAuthFixture()
	registerDevotee(t, svc, "priya@example.org.nz")

	_, short, err := svc.Login(context.Background(), "priya@example.org.nz", "namaste108", false)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	_, long, err := svc.Login(context.Background(), "priya@example.org.nz", "namaste108", true)
	if err != nil {
		t.Fatalf("login remember: %v", err)
	}
	if !long.ExpiresAt.After(short.ExpiresAt.Add(24 * time.Hour)) {
		t.Fatalf("remember-me expiry %v not meaningfully beyond %v", long.ExpiresAt, short.ExpiresAt)
	}
}

func TestLookupSessionFailsClosed(t *testing.T) {
	svc, devotees, sessions := newAuthFixture()
	devotee, session := registerDevotee(t, svc, "priya@example.org.nz")

	if _, err := svc.LookupSession(context.Background(), session.Token); err != nil {
		t.Fatalf("lookup live session: %v", err)
	}

	// Expired session: invalid, and the row is discarded on observation.
	sessions.sessions[session.Token].ExpiresAt = time.Now().Add(-time.Minute)
	_, err := svc.LookupSession(context.Background(), session.Token)
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
	if _, ok := sessions.sessions[session.Token]; ok {
		t.Fatal("expired session should be deleted on lookup")
	}

	// Deactivated owner: a valid token no longer authenticates.
	_, fresh, err := svc.Login(context.Background(), "priya@example.org.nz", "namaste108", false)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	devotees.byID[devotee.ID].IsActive = false
	if _, err := svc.LookupSession(context.Background(), fresh.Token); err == nil {
		t.Fatal("expected lookup to fail for deactivated devotee")
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	_, session := registerDevotee(t, svc, "priya@example.org.nz")

	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.sessions[session.Token]; ok {
		t.Fatal("session should be gone after logout")
	}
	// Logout with no token is a no-op.
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty logout: %v", err)
	}
}

func TestUpdateProfilePatchesOnlyProvidedFields(t *testing.T) {
	svc, _, _ := newAuthFixture()
	devotee, _ := registerDevotee(t, svc, "priya@example.org.nz")

	spiritual := "Bhakti Priya"
	city := "Christchurch"
	updated, err := svc.UpdateProfile(context.Background(), devotee.ID, ProfileUpdateInput{
		SpiritualName: &spiritual,
		City:          &city,
		Interests:     []string{"kirtan", "seva"},
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FirstName != "Priya" || updated.LastName != "Sharma" {
		t.Fatalf("untouched fields changed: %q %q", updated.FirstName, updated.LastName)
	}
	if updated.SpiritualName == nil || *updated.SpiritualName != spiritual {
		t.Fatalf("spiritual name = %v", updated.SpiritualName)
	}
	if updated.City != city {
		t.Fatalf("city = %q", updated.City)
	}
	if len(updated.Interests) != 2 {
		t.Fatalf("interests = %v", updated.Interests)
	}
}
