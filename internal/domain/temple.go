package domain

import "time"

// Temple is a directory entry for a mandir. Public browsing only surfaces
// verified, active temples.
type Temple struct {
	ID           string
	Name         string
	Deity        string
	Address      string
	City         string
	Phone        *string
	Email        *string
	Website      *string
	Description  string
	ImageURL     *string
	Rating       float64
	TotalReviews int
	IsVerified   bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
