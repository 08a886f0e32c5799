package dto

import (
	"time"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// TempleResponse is the public directory view of a temple.
type TempleResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Deity        string    `json:"deity"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Website      *string   `json:"website,omitempty"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"totalReviews"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewTempleResponse maps a temple to its response view.
func NewTempleResponse(temple *domain.Temple) TempleResponse {
	return TempleResponse{
		ID:           temple.ID,
		Name:         temple.Name,
		Deity:        temple.Deity,
		Address:      temple.Address,
		City:         temple.City,
		Phone:        temple.Phone,
		Email:        temple.Email,
		Website:      temple.Website,
		Description:  temple.Description,
		ImageURL:     temple.ImageURL,
		Rating:       temple.Rating,
		TotalReviews: temple.TotalReviews,
		CreatedAt:    temple.CreatedAt,
	}
}
