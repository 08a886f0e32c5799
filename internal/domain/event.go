package domain

import "time"

// Event is a community event submission with the same review lifecycle as
// businesses plus an independent active flag. "Deletion" is soft: status
// becomes rejected and IsActive false.
type Event struct {
	ID                 string
	Title              string
	Description        string
	Category           string
	Venue              string
	City               string
	StartDate          time.Time
	StartTime          string
	EndTime            *string
	OrganizerDevoteeID string
	ContactEmail       string
	ImageURL           *string
	Status             SubmissionStatus
	IsActive           bool
	SubmittedAt        time.Time
	ReviewedAt         *time.Time
	ReviewNotes        *string
}
