package domain

import "time"

// Devotee is the domain model for registered community members.
// Accounts are never hard-deleted; deactivation flips IsActive.
type Devotee struct {
	ID                 string
	Email              string
	PasswordHash       string
	FirstName          string
	LastName           string
	SpiritualName      *string
	City               string
	Bio                *string
	Interests          []string
	SpiritualPractices []string
	IsVerified         bool
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName joins first and last name for display.
func (d *Devotee) FullName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}
