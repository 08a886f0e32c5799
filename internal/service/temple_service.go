package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/repository"
	apperrors "github.com/sanjeevduttpandey/HindTempleDirectory-sub001/pkg/util"
)

// TempleService provides read access to the temple directory.
type TempleService struct {
	temples repository.TempleRepository
}

// NewTempleService constructs the service.
func NewTempleService(temples repository.TempleRepository) *TempleService {
	return &TempleService{temples: temples}
}

// List returns verified, active temples, optionally filtered by city.
func (s *TempleService) List(ctx context.Context, city *string, limit int) ([]domain.Temple, error) {
	return s.temples.ListVerified(ctx, city, limit)
}

// Get returns one temple; unverified or inactive temples read as not found.
func (s *TempleService) Get(ctx context.Context, id string) (*domain.Temple, error) {
	temple, err := s.temples.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("temple", map[string]any{"id": id})
		}
		return nil, err
	}
	if !temple.IsVerified || !temple.IsActive {
		return nil, apperrors.NewNotFound("temple", map[string]any{"id": id})
	}
	return temple, nil
}
