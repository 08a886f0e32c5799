package domain

import "time"

// SubmissionStatus enumerates review lifecycle states for submissions.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// ValidSubmissionStatus reports whether the value belongs to the closed status set.
func ValidSubmissionStatus(s SubmissionStatus) bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

// BusinessSubmission is a prospective directory entry awaiting review.
// Submissions are never deleted; rejected ones stay queryable by id.
type BusinessSubmission struct {
	ID            string
	Name          string
	Category      string
	Description   string
	Address       string
	City          string
	Phone         string
	Email         string
	Website       *string
	OwnerName     string
	OwnerEmail    string
	OwnerPhone    string
	Services      []string
	SocialLinks   map[string]string
	OperatingHours map[string]string
	SpecialOffers *string
	Images        []string
	Status        SubmissionStatus
	SubmittedAt   time.Time
	ReviewedAt    *time.Time
	ReviewNotes   *string
}

// ApprovedBusiness is the derived public projection of an approved submission.
// Status and activity are orthogonal: delisting clears IsActive without
// touching the source submission's status.
type ApprovedBusiness struct {
	ID           string
	SubmissionID string
	Rating       float64
	TotalReviews int
	IsActive     bool
	ApprovedAt   time.Time
}

// DefaultListingRating seeds new listings until real reviews accumulate.
const DefaultListingRating = 4.5

// BusinessListing pairs an approved submission with its public projection.
type BusinessListing struct {
	Submission BusinessSubmission
	Listing    ApprovedBusiness
}

// SubmissionStats are on-demand counts over business submissions.
type SubmissionStats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}
