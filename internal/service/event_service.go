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

// EventService owns community event submission and moderation.
type EventService struct {
	eventsRepo repository.EventRepository
	dispatcher events.Dispatcher
}

// EventDependencies bundles repositories for the event service.
type EventDependencies struct {
	EventRepo  repository.EventRepository
	Dispatcher events.Dispatcher
}

// EventSubmitInput describes a devotee's event submission.
type EventSubmitInput struct {
	Title        string
	Description  string
	Category     string
	Venue        string
	City         string
	StartDate    time.Time
	StartTime    string
	EndTime      *string
	ContactEmail string
	ImageURL     *string
}

// EventUpdateInput is an admin partial patch; nil means unchanged.
type EventUpdateInput struct {
	Title        *string
	Description  *string
	Category     *string
	Venue        *string
	City         *string
	StartDate    *time.Time
	StartTime    *string
	EndTime      *string
	ContactEmail *string
	ImageURL     *string
}

// NewEventService constructs the service.
func NewEventService(deps EventDependencies) *EventService {
	return &EventService{
		eventsRepo: deps.EventRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Submit creates a pending event owned by the organizer devotee.
func (s *EventService) Submit(ctx context.Context, organizerID string, input EventSubmitInput) (*domain.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	if input.StartDate.IsZero() {
		return nil, apperrors.NewValidationError("start date required", nil)
	}

	event := &domain.Event{
		Title:              title,
		Description:        strings.TrimSpace(input.Description),
		Category:           strings.TrimSpace(input.Category),
		Venue:              strings.TrimSpace(input.Venue),
		City:               strings.TrimSpace(input.City),
		StartDate:          input.StartDate,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		OrganizerDevoteeID: organizerID,
		ContactEmail:       strings.TrimSpace(input.ContactEmail),
		ImageURL:           input.ImageURL,
		Status:             domain.SubmissionStatusPending,
		IsActive:           true,
	}
	if err := s.eventsRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventEventSubmitted,
		SubjectID: event.ID,
		Payload: events.EventSubmittedPayload{
			Title:       event.Title,
			City:        event.City,
			StartDate:   event.StartDate,
			OrganizerID: organizerID,
		},
	})
	return event, nil
}

// Get fetches any event by id, regardless of status.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return nil, err
	}
	return event, nil
}

// List returns events for the admin view, optionally filtered by status.
func (s *EventService) List(ctx context.Context, status *domain.SubmissionStatus) ([]domain.Event, domain.SubmissionStats, error) {
	if status != nil && !domain.ValidSubmissionStatus(*status) {
		return nil, domain.SubmissionStats{}, apperrors.NewValidationError("invalid status", map[string]any{"status": string(*status)})
	}
	list, err := s.eventsRepo.List(ctx, status)
	if err != nil {
		return nil, domain.SubmissionStats{}, err
	}
	stats, err := s.eventsRepo.Stats(ctx)
	if err != nil {
		return nil, domain.SubmissionStats{}, err
	}
	return list, stats, nil
}

// Upcoming returns approved, active, future-dated events ordered by start.
func (s *EventService) Upcoming(ctx context.Context, limit int) ([]domain.Event, error) {
	return s.eventsRepo.ListUpcoming(ctx, startOfDay(time.Now()), limit)
}

// Approve transitions a pending event to approved.
func (s *EventService) Approve(ctx context.Context, id string) (*domain.Event, error) {
	if err := s.eventsRepo.Approve(ctx, id, time.Now()); err != nil {
		return nil, s.mapTransitionErr(err, id)
	}
	s.publish(ctx, events.Event{
		Type:      events.EventEventApproved,
		SubjectID: id,
		Payload: events.ModerationPayload{
			OldStatus: domain.SubmissionStatusPending,
			NewStatus: domain.SubmissionStatusApproved,
		},
	})
	return s.Get(ctx, id)
}

// Reject transitions a pending event to rejected with optional notes.
func (s *EventService) Reject(ctx context.Context, id string, notes *string) (*domain.Event, error) {
	if err := s.eventsRepo.Reject(ctx, id, notes, time.Now()); err != nil {
		return nil, s.mapTransitionErr(err, id)
	}
	s.publish(ctx, events.Event{
		Type:      events.EventEventRejected,
		SubjectID: id,
		Payload: events.ModerationPayload{
			OldStatus: domain.SubmissionStatusPending,
			NewStatus: domain.SubmissionStatusRejected,
			Notes:     notes,
		},
	})
	return s.Get(ctx, id)
}

// Update applies an admin partial patch to the event.
func (s *EventService) Update(ctx context.Context, id string, input EventUpdateInput) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		event.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		event.Category = strings.TrimSpace(*input.Category)
	}
	if input.Venue != nil {
		event.Venue = strings.TrimSpace(*input.Venue)
	}
	if input.City != nil {
		event.City = strings.TrimSpace(*input.City)
	}
	if input.StartDate != nil {
		event.StartDate = *input.StartDate
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = input.EndTime
	}
	if input.ContactEmail != nil {
		event.ContactEmail = strings.TrimSpace(*input.ContactEmail)
	}
	if input.ImageURL != nil {
		event.ImageURL = input.ImageURL
	}

	if err := s.eventsRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// SoftDelete marks the event rejected and inactive. The row remains for
// admin queries.
func (s *EventService) SoftDelete(ctx context.Context, id string) error {
	if err := s.eventsRepo.SoftDelete(ctx, id, time.Now()); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventEventDeleted,
		SubjectID: id,
		Payload:   events.DelistPayload{IsActive: false},
	})
	return nil
}

func (s *EventService) mapTransitionErr(err error, id string) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.NewNotFound("event", map[string]any{"id": id})
	case errors.Is(err, repository.ErrNotPending):
		return apperrors.NewConflict("event already reviewed", map[string]any{"id": id})
	default:
		return err
	}
}

func (s *EventService) publish(ctx context.Context, event events.Event) {
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

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
