package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/events"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/repository"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

// BusinessService owns the business submission and moderation workflows.
type BusinessService struct {
	businesses repository.BusinessRepository
	dispatcher events.Dispatcher
}

// BusinessDependencies bundles repositories for the business service.
type BusinessDependencies struct {
	BusinessRepo repository.BusinessRepository
	Dispatcher   events.Dispatcher
}

// BusinessSubmitInput describes the public registration payload.
type BusinessSubmitInput struct {
	Name           string
	Category       string
	Description    string
	Address        string
	City           string
	Phone          string
	Email          string
	Website        *string
	OwnerName      string
	OwnerEmail     string
	OwnerPhone     string
	Services       []string
	SocialLinks    map[string]string
	OperatingHours map[string]string
	SpecialOffers  *string
	Images         []string
}

// BusinessUpdateInput is an admin partial patch; nil means unchanged.
// KeepImageURLs plus NewImageURLs drive the image-set merge.
type BusinessUpdateInput struct {
	Name           *string
	Category       *string
	Description    *string
	Address        *string
	City           *string
	Phone          *string
	Email          *string
	Website        *string
	OwnerName      *string
	OwnerEmail     *string
	OwnerPhone     *string
	Services       []string
	SocialLinks    map[string]string
	OperatingHours map[string]string
	SpecialOffers  *string
	KeepImageURLs  []string
	NewImageURLs   []string
	IsActive       *bool
}

// NewBusinessService constructs the service.
func NewBusinessService(deps BusinessDependencies) *BusinessService {
	return &BusinessService{
		businesses: deps.BusinessRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Submit creates a pending submission from a public registration form.
func (s *BusinessService) Submit(ctx context.Context, input BusinessSubmitInput) (*domain.BusinessSubmission, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Category) == "" {
		return nil, apperrors.NewValidationError("name and category required", nil)
	}

	sub := &domain.BusinessSubmission{
		Name:           name,
		Category:       strings.TrimSpace(input.Category),
		Description:    strings.TrimSpace(input.Description),
		Address:        strings.TrimSpace(input.Address),
		City:           strings.TrimSpace(input.City),
		Phone:          strings.TrimSpace(input.Phone),
		Email:          strings.TrimSpace(input.Email),
		Website:        input.Website,
		OwnerName:      strings.TrimSpace(input.OwnerName),
		OwnerEmail:     strings.TrimSpace(input.OwnerEmail),
		OwnerPhone:     strings.TrimSpace(input.OwnerPhone),
		Services:       input.Services,
		SocialLinks:    input.SocialLinks,
		OperatingHours: input.OperatingHours,
		SpecialOffers:  input.SpecialOffers,
		Images:         dedupeStrings(input.Images),
		Status:         domain.SubmissionStatusPending,
	}
	if sub.SocialLinks == nil {
		sub.SocialLinks = map[string]string{}
	}
	if sub.OperatingHours == nil {
		sub.OperatingHours = map[string]string{}
	}

	if err := s.businesses.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventBusinessSubmitted,
		SubjectID: sub.ID,
		Payload: events.BusinessSubmittedPayload{
			Name:     sub.Name,
			Category: sub.Category,
			City:     sub.City,
		},
	})
	return sub, nil
}

// GetSubmission fetches any submission by id, regardless of status.
func (s *BusinessService) GetSubmission(ctx context.Context, id string) (*domain.BusinessSubmission, error) {
	sub, err := s.businesses.GetSubmissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("business submission", map[string]any{"id": id})
		}
		return nil, err
	}
	return sub, nil
}

// ListSubmissions returns submissions for the admin view, optionally filtered.
func (s *BusinessService) ListSubmissions(ctx context.Context, status *domain.SubmissionStatus) ([]domain.BusinessSubmission, domain.SubmissionStats, error) {
	if status != nil && !domain.ValidSubmissionStatus(*status) {
		return nil, domain.SubmissionStats{}, apperrors.NewValidationError("invalid status", map[string]any{"status": string(*status)})
	}
	subs, err := s.businesses.ListSubmissions(ctx, status)
	if err != nil {
		return nil, domain.SubmissionStats{}, err
	}
	stats, err := s.businesses.Stats(ctx)
	if err != nil {
		return nil, domain.SubmissionStats{}, err
	}
	return subs, stats, nil
}

// ListApproved returns only approved, active listings for public browsing.
func (s *BusinessService) ListApproved(ctx context.Context) ([]domain.BusinessListing, error) {
	return s.businesses.ListApproved(ctx)
}

// GetApproved returns the public detail of an approved, active listing.
func (s *BusinessService) GetApproved(ctx context.Context, submissionID string) (*domain.BusinessListing, error) {
	listing, err := s.businesses.GetApprovedBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("business", map[string]any{"id": submissionID})
		}
		return nil, err
	}
	if listing.Submission.Status != domain.SubmissionStatusApproved || !listing.Listing.IsActive {
		return nil, apperrors.NewNotFound("business", map[string]any{"id": submissionID})
	}
	return listing, nil
}

// Approve transitions a pending submission to approved and materializes its
// public listing. Approving a non-pending submission is a conflict; the
// guarded transition guarantees at most one listing ever exists.
func (s *BusinessService) Approve(ctx context.Context, id string) (*domain.ApprovedBusiness, error) {
	listing, err := s.businesses.Approve(ctx, id, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.NewNotFound("business submission", map[string]any{"id": id})
		case errors.Is(err, repository.ErrNotPending):
			return nil, apperrors.NewConflict("submission already reviewed", map[string]any{"id": id})
		default:
			return nil, err
		}
	}
	s.publish(ctx, events.Event{
		Type:      events.EventBusinessApproved,
		SubjectID: id,
		Payload: events.ModerationPayload{
			OldStatus: domain.SubmissionStatusPending,
			NewStatus: domain.SubmissionStatusApproved,
		},
	})
	return listing, nil
}

// Reject transitions a pending submission to rejected with optional notes.
func (s *BusinessService) Reject(ctx context.Context, id string, notes *string) error {
	if err := s.businesses.Reject(ctx, id, notes, time.Now()); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return apperrors.NewNotFound("business submission", map[string]any{"id": id})
		case errors.Is(err, repository.ErrNotPending):
			return apperrors.NewConflict("submission already reviewed", map[string]any{"id": id})
		default:
			return err
		}
	}
	s.publish(ctx, events.Event{
		Type:      events.EventBusinessRejected,
		SubjectID: id,
		Payload: events.ModerationPayload{
			OldStatus: domain.SubmissionStatusPending,
			NewStatus: domain.SubmissionStatusRejected,
			Notes:     notes,
		},
	})
	return nil
}

// Update applies an admin partial patch, including the image-set merge:
// the kept URLs arrive from the caller, new uploads are appended, and the
// result is de-duplicated preserving order. An IsActive field toggles the
// derived listing without touching submission status.
func (s *BusinessService) Update(ctx context.Context, id string, input BusinessUpdateInput) (*domain.BusinessSubmission, error) {
	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	applyString(&sub.Name, input.Name)
	applyString(&sub.Category, input.Category)
	applyString(&sub.Description, input.Description)
	applyString(&sub.Address, input.Address)
	applyString(&sub.City, input.City)
	applyString(&sub.Phone, input.Phone)
	applyString(&sub.Email, input.Email)
	applyString(&sub.OwnerName, input.OwnerName)
	applyString(&sub.OwnerEmail, input.OwnerEmail)
	applyString(&sub.OwnerPhone, input.OwnerPhone)
	if input.Website != nil {
		sub.Website = input.Website
	}
	if input.Services != nil {
		sub.Services = input.Services
	}
	if input.SocialLinks != nil {
		sub.SocialLinks = input.SocialLinks
	}
	if input.OperatingHours != nil {
		sub.OperatingHours = input.OperatingHours
	}
	if input.SpecialOffers != nil {
		sub.SpecialOffers = input.SpecialOffers
	}
	if input.KeepImageURLs != nil || input.NewImageURLs != nil {
		sub.Images = dedupeStrings(append(append([]string{}, input.KeepImageURLs...), input.NewImageURLs...))
	}

	if err := s.businesses.UpdateSubmission(ctx, sub); err != nil {
		return nil, err
	}

	if input.IsActive != nil && sub.Status == domain.SubmissionStatusApproved {
		if err := s.setActive(ctx, id, *input.IsActive); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// Delist marks the approved listing inactive; the submission keeps its
// approved status.
func (s *BusinessService) Delist(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

func (s *BusinessService) setActive(ctx context.Context, id string, active bool) error {
	if err := s.businesses.SetListingActive(ctx, id, active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("business listing", map[string]any{"id": id})
		}
		return err
	}
	if !active {
		s.publish(ctx, events.Event{
			Type:      events.EventBusinessDelisted,
			SubjectID: id,
			Payload:   events.DelistPayload{IsActive: false},
		})
	}
	return nil
}

func (s *BusinessService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
