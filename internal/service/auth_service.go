package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/auth"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/config"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/repository"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

// AuthService coordinates devotee registration, login, and session lifecycle.
type AuthService struct {
	devotees   repository.DevoteeRepository
	sessions   repository.SessionRepository
	bcryptCost int
	authCfg    config.AuthConfig
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	DevoteeRepo repository.DevoteeRepository
	SessionRepo repository.SessionRepository
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Email              string
	Password           string
	FirstName          string
	LastName           string
	SpiritualName      *string
	City               string
	Bio                *string
	Interests          []string
	SpiritualPractices []string
}

// ProfileUpdateInput carries profile mutation fields; nil means unchanged.
type ProfileUpdateInput struct {
	FirstName          *string
	LastName           *string
	SpiritualName      *string
	City               *string
	Bio                *string
	Interests          []string
	SpiritualPractices []string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		devotees:   deps.DevoteeRepo,
		sessions:   deps.SessionRepo,
		bcryptCost: cfg.Auth.BcryptCost,
		authCfg:    cfg.Auth,
	}
}

// Register creates a new devotee account and an initial session.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Devotee, *domain.Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.devotees.GetByEmail(ctx, email); err == nil {
		return nil, nil, apperrors.NewConflict("account already exists", map[string]any{"email": email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	devotee := &domain.Devotee{
		Email:              email,
		PasswordHash:       hash,
		FirstName:          strings.TrimSpace(input.FirstName),
		LastName:           strings.TrimSpace(input.LastName),
		SpiritualName:      input.SpiritualName,
		City:               strings.TrimSpace(input.City),
		Bio:                input.Bio,
		Interests:          input.Interests,
		SpiritualPractices: input.SpiritualPractices,
		IsActive:           true,
	}
	if err := s.devotees.Create(ctx, devotee); err != nil {
		return nil, nil, err
	}

	session, err := s.createSession(ctx, devotee.ID, false)
	if err != nil {
		return nil, nil, err
	}
	return devotee, session, nil
}

// Login authenticates a devotee and issues a session. Unknown email and wrong
// password both yield the same generic unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string, rememberMe bool) (*domain.Devotee, *domain.Session, error) {
	devotee, err := s.devotees.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, nil, err
	}
	if !devotee.IsActive {
		return nil, nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(devotee.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized("invalid credentials")
	}

	session, err := s.createSession(ctx, devotee.ID, rememberMe)
	if err != nil {
		return nil, nil, err
	}
	return devotee, session, nil
}

// Logout deletes the session named by the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// LookupSession resolves a token to its devotee, failing closed on expiry or
// deactivation.
func (s *AuthService) LookupSession(ctx context.Context, token string) (*domain.Devotee, error) {
	devotee, _, err := s.sessions.Lookup(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrSessionInvalid) {
			return nil, apperrors.NewUnauthorized("session invalid or expired")
		}
		return nil, err
	}
	return devotee, nil
}

// UpdateProfile applies a partial profile patch to the devotee.
func (s *AuthService) UpdateProfile(ctx context.Context, devoteeID string, input ProfileUpdateInput) (*domain.Devotee, error) {
	devotee, err := s.devotees.GetByID(ctx, devoteeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("devotee", nil)
		}
		return nil, err
	}

	if input.FirstName != nil {
		devotee.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		devotee.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.SpiritualName != nil {
		devotee.SpiritualName = input.SpiritualName
	}
	if input.City != nil {
		devotee.City = strings.TrimSpace(*input.City)
	}
	if input.Bio != nil {
		devotee.Bio = input.Bio
	}
	if input.Interests != nil {
		devotee.Interests = input.Interests
	}
	if input.SpiritualPractices != nil {
		devotee.SpiritualPractices = input.SpiritualPractices
	}

	if err := s.devotees.Update(ctx, devotee); err != nil {
		return nil, err
	}
	return devotee, nil
}

func (s *AuthService) createSession(ctx context.Context, devoteeID string, rememberMe bool) (*domain.Session, error) {
	session := &domain.Session{
		Token:     auth.NewSessionToken(),
		DevoteeID: devoteeID,
		ExpiresAt: time.Now().Add(s.authCfg.SessionTTL(rememberMe)),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
