package events

import (
	"time"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBusinessSubmitted EventType = "business_submitted"
	EventBusinessApproved  EventType = "business_approved"
	EventBusinessRejected  EventType = "business_rejected"
	EventBusinessDelisted  EventType = "business_delisted"
	EventEventSubmitted    EventType = "event_submitted"
	EventEventApproved     EventType = "event_approved"
	EventEventRejected     EventType = "event_rejected"
	EventEventDeleted      EventType = "event_deleted"
)

// Event represents a moderation lifecycle event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BusinessSubmittedPayload payload.
type BusinessSubmittedPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	City     string `json:"city"`
}

// ModerationPayload payload for approve/reject outcomes.
type ModerationPayload struct {
	OldStatus domain.SubmissionStatus `json:"old_status"`
	NewStatus domain.SubmissionStatus `json:"new_status"`
	Notes     *string                 `json:"notes,omitempty"`
}

// DelistPayload payload.
type DelistPayload struct {
	IsActive bool `json:"is_active"`
}

// EventSubmittedPayload payload.
type EventSubmittedPayload struct {
	Title       string    `json:"title"`
	City        string    `json:"city"`
	StartDate   time.Time `json:"start_date"`
	OrganizerID string    `json:"organizer_id"`
}
