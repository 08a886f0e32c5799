package dto

import (
	"time"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// RegisterRequest payload for new devotees.
type RegisterRequest struct {
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	SpiritualName      *string  `json:"spiritualName,omitempty"`
	City               string   `json:"city"`
	Bio                *string  `json:"bio,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	SpiritualPractices []string `json:"spiritualPractices,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// ProfileUpdateRequest payload for PUT /api/auth/me.
type ProfileUpdateRequest struct {
	FirstName          *string  `json:"firstName,omitempty"`
	LastName           *string  `json:"lastName,omitempty"`
	SpiritualName      *string  `json:"spiritualName,omitempty"`
	City               *string  `json:"city,omitempty"`
	Bio                *string  `json:"bio,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	SpiritualPractices []string `json:"spiritualPractices,omitempty"`
}

// AdminAuthRequest payload for POST /api/admin/auth.
type AdminAuthRequest struct {
	Password string `json:"password"`
	Action   string `json:"action"`
}

// DevoteeResponse is the public view of an account.
type DevoteeResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	SpiritualName      *string   `json:"spiritualName,omitempty"`
	City               string    `json:"city"`
	Bio                *string   `json:"bio,omitempty"`
	Interests          []string  `json:"interests"`
	SpiritualPractices []string  `json:"spiritualPractices"`
	IsVerified         bool      `json:"isVerified"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewDevoteeResponse maps a domain devotee to its response view.
func NewDevoteeResponse(d *domain.Devotee) DevoteeResponse {
	return DevoteeResponse{
		ID:                 d.ID,
		Email:              d.Email,
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		SpiritualName:      d.SpiritualName,
		City:               d.City,
		Bio:                d.Bio,
		Interests:          d.Interests,
		SpiritualPractices: d.SpiritualPractices,
		IsVerified:         d.IsVerified,
		CreatedAt:          d.CreatedAt,
	}
}
