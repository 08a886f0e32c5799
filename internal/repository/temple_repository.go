package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// TempleRepository provides read access to the temple directory.
type TempleRepository interface {
	// ListVerified returns verified, active temples ordered by rating then
	// review count, optionally filtered by city.
	ListVerified(ctx context.Context, city *string, limit int) ([]domain.Temple, error)
	GetByID(ctx context.Context, id string) (*domain.Temple, error)
}

type templeRepository struct {
	pool *pgxpool.Pool
}

// NewTempleRepository instantiates repository.
func NewTempleRepository(pool *pgxpool.Pool) TempleRepository {
	return &templeRepository{pool: pool}
}

const templeColumns = `
        id, name, deity, address, city, phone, email, website, description, image_url,
        rating, total_reviews, is_verified, is_active, created_at, updated_at`

func (r *templeRepository) ListVerified(ctx context.Context, city *string, limit int) ([]domain.Temple, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + templeColumns + `
        FROM temples
        WHERE is_verified = TRUE AND is_active = TRUE`
	args := []any{}
	if city != nil && *city != "" {
		args = append(args, *city)
		query += ` AND city = $1 ORDER BY rating DESC, total_reviews DESC LIMIT $2`
		args = append(args, limit)
	} else {
		query += ` ORDER BY rating DESC, total_reviews DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Temple
	for rows.Next() {
		temple, err := scanTemple(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *temple)
	}
	return result, rows.Err()
}

func (r *templeRepository) GetByID(ctx context.Context, id string) (*domain.Temple, error) {
	query := `SELECT ` + templeColumns + ` FROM temples WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTemple(row)
}

func scanTemple(row rowScanner) (*domain.Temple, error) {
	var temple domain.Temple
	if err := row.Scan(
		&temple.ID,
		&temple.Name,
		&temple.Deity,
		&temple.Address,
		&temple.City,
		&temple.Phone,
		&temple.Email,
		&temple.Website,
		&temple.Description,
		&temple.ImageURL,
		&temple.Rating,
		&temple.TotalReviews,
		&temple.IsVerified,
		&temple.IsActive,
		&temple.CreatedAt,
		&temple.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &temple, nil
}
