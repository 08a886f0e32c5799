package dto

import (
	"time"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// BusinessRegisterRequest payload for POST /api/business/register.
type BusinessRegisterRequest struct {
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	Website        *string           `json:"website,omitempty"`
	OwnerName      string            `json:"ownerName"`
	OwnerEmail     string            `json:"ownerEmail"`
	OwnerPhone     string            `json:"ownerPhone"`
	Services       []string          `json:"services,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
	OperatingHours map[string]string `json:"operatingHours,omitempty"`
	SpecialOffers  *string           `json:"specialOffers,omitempty"`
	Images         []string          `json:"images,omitempty"`
}

// SubmissionReviewRequest payload for PATCH /api/admin/business-submissions/:id.
type SubmissionReviewRequest struct {
	Status      string  `json:"status"`
	ReviewNotes *string `json:"reviewNotes,omitempty"`
}

// BusinessUpdateRequest payload for PATCH /api/admin/businesses/:id.
// CurrentImages carries the URLs the caller wants to keep; NewImages are
// appended and the merged set is de-duplicated.
type BusinessUpdateRequest struct {
	Name           *string           `json:"name,omitempty"`
	Category       *string           `json:"category,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Address        *string           `json:"address,omitempty"`
	City           *string           `json:"city,omitempty"`
	Phone          *string           `json:"phone,omitempty"`
	Email          *string           `json:"email,omitempty"`
	Website        *string           `json:"website,omitempty"`
	OwnerName      *string           `json:"ownerName,omitempty"`
	OwnerEmail     *string           `json:"ownerEmail,omitempty"`
	OwnerPhone     *string           `json:"ownerPhone,omitempty"`
	Services       []string          `json:"services,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
	OperatingHours map[string]string `json:"operatingHours,omitempty"`
	SpecialOffers  *string           `json:"specialOffers,omitempty"`
	CurrentImages  []string          `json:"currentImages,omitempty"`
	NewImages      []string          `json:"newImages,omitempty"`
	IsActive       *bool             `json:"isActive,omitempty"`
}

// SubmissionResponse is the admin view of a submission.
type SubmissionResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	Website        *string           `json:"website,omitempty"`
	OwnerName      string            `json:"ownerName"`
	OwnerEmail     string            `json:"ownerEmail"`
	OwnerPhone     string            `json:"ownerPhone"`
	Services       []string          `json:"services"`
	SocialLinks    map[string]string `json:"socialLinks"`
	OperatingHours map[string]string `json:"operatingHours"`
	SpecialOffers  *string           `json:"specialOffers,omitempty"`
	Images         []string          `json:"images"`
	Status         string            `json:"status"`
	SubmittedAt    time.Time         `json:"submittedAt"`
	ReviewedAt     *time.Time        `json:"reviewedAt,omitempty"`
	ReviewNotes    *string           `json:"reviewNotes,omitempty"`
}

// BusinessResponse is the public view of an approved listing.
type BusinessResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	Website        *string           `json:"website,omitempty"`
	Services       []string          `json:"services"`
	SocialLinks    map[string]string `json:"socialLinks"`
	OperatingHours map[string]string `json:"operatingHours"`
	SpecialOffers  *string           `json:"specialOffers,omitempty"`
	Images         []string          `json:"images"`
	Rating         float64           `json:"rating"`
	TotalReviews   int               `json:"totalReviews"`
	ApprovedAt     time.Time         `json:"approvedAt"`
}

// StatsResponse mirrors domain.SubmissionStats.
type StatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// NewSubmissionResponse maps a submission to its admin view.
func NewSubmissionResponse(sub *domain.BusinessSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:             sub.ID,
		Name:           sub.Name,
		Category:       sub.Category,
		Description:    sub.Description,
		Address:        sub.Address,
		City:           sub.City,
		Phone:          sub.Phone,
		Email:          sub.Email,
		Website:        sub.Website,
		OwnerName:      sub.OwnerName,
		OwnerEmail:     sub.OwnerEmail,
		OwnerPhone:     sub.OwnerPhone,
		Services:       sub.Services,
		SocialLinks:    sub.SocialLinks,
		OperatingHours: sub.OperatingHours,
		SpecialOffers:  sub.SpecialOffers,
		Images:         sub.Images,
		Status:         string(sub.Status),
		SubmittedAt:    sub.SubmittedAt,
		ReviewedAt:     sub.ReviewedAt,
		ReviewNotes:    sub.ReviewNotes,
	}
}

// NewBusinessResponse maps a listing to its public view. Owner contact
// details are not exposed.
func NewBusinessResponse(listing *domain.BusinessListing) BusinessResponse {
	sub := listing.Submission
	return BusinessResponse{
		ID:             sub.ID,
		Name:           sub.Name,
		Category:       sub.Category,
		Description:    sub.Description,
		Address:        sub.Address,
		City:           sub.City,
		Phone:          sub.Phone,
		Email:          sub.Email,
		Website:        sub.Website,
		Services:       sub.Services,
		SocialLinks:    sub.SocialLinks,
		OperatingHours: sub.OperatingHours,
		SpecialOffers:  sub.SpecialOffers,
		Images:         sub.Images,
		Rating:         listing.Listing.Rating,
		TotalReviews:   listing.Listing.TotalReviews,
		ApprovedAt:     listing.Listing.ApprovedAt,
	}
}

// NewStatsResponse maps stats to their response view.
func NewStatsResponse(stats domain.SubmissionStats) StatsResponse {
	return StatsResponse{
		Total:    stats.Total,
		Pending:  stats.Pending,
		Approved: stats.Approved,
		Rejected: stats.Rejected,
	}
}
