package dto

import (
	"time"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// EventSubmitRequest payload for POST /api/events.
type EventSubmitRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Venue        string  `json:"venue"`
	City         string  `json:"city"`
	StartDate    string  `json:"startDate"`
	StartTime    string  `json:"startTime"`
	EndTime      *string `json:"endTime,omitempty"`
	ContactEmail string  `json:"contactEmail"`
	ImageURL     *string `json:"imageUrl,omitempty"`
}

// EventActionRequest payload for PUT /api/admin/event-submissions/:id.
// Action selects approve, reject, or update.
type EventActionRequest struct {
	Action      string  `json:"action" form:"action"`
	ReviewNotes *string `json:"reviewNotes,omitempty" form:"reviewNotes"`

	Title        *string `json:"title,omitempty" form:"title"`
	Description  *string `json:"description,omitempty" form:"description"`
	Category     *string `json:"category,omitempty" form:"category"`
	Venue        *string `json:"venue,omitempty" form:"venue"`
	City         *string `json:"city,omitempty" form:"city"`
	StartDate    *string `json:"startDate,omitempty" form:"startDate"`
	StartTime    *string `json:"startTime,omitempty" form:"startTime"`
	EndTime      *string `json:"endTime,omitempty" form:"endTime"`
	ContactEmail *string `json:"contactEmail,omitempty" form:"contactEmail"`
	ImageURL     *string `json:"imageUrl,omitempty" form:"imageUrl"`
}

// EventResponse is the full event view.
type EventResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Venue        string     `json:"venue"`
	City         string     `json:"city"`
	StartDate    string     `json:"startDate"`
	StartTime    string     `json:"startTime"`
	EndTime      *string    `json:"endTime,omitempty"`
	OrganizerID  string     `json:"organizerId"`
	ContactEmail string     `json:"contactEmail"`
	ImageURL     *string    `json:"imageUrl,omitempty"`
	Status       string     `json:"status"`
	IsActive     bool       `json:"isActive"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	ReviewNotes  *string    `json:"reviewNotes,omitempty"`
}

// EventDateLayout is the wire format for event dates.
const EventDateLayout = "2006-01-02"

// NewEventResponse maps an event to its response view.
func NewEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Description:  event.Description,
		Category:     event.Category,
		Venue:        event.Venue,
		City:         event.City,
		StartDate:    event.StartDate.Format(EventDateLayout),
		StartTime:    event.StartTime,
		EndTime:      event.EndTime,
		OrganizerID:  event.OrganizerDevoteeID,
		ContactEmail: event.ContactEmail,
		ImageURL:     event.ImageURL,
		Status:       string(event.Status),
		IsActive:     event.IsActive,
		SubmittedAt:  event.SubmittedAt,
		ReviewedAt:   event.ReviewedAt,
		ReviewNotes:  event.ReviewNotes,
	}
}
