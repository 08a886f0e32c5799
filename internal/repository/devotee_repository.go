package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// DevoteeRepository defines persistence access for devotee accounts.
type DevoteeRepository interface {
	Create(ctx context.Context, devotee *domain.Devotee) error
	Update(ctx context.Context, devotee *domain.Devotee) error
	GetByID(ctx context.Context, id string) (*domain.Devotee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Devotee, error)
}

type devoteeRepository struct {
	pool *pgxpool.Pool
}

// NewDevoteeRepository returns a Postgres-backed implementation.
func NewDevoteeRepository(pool *pgxpool.Pool) DevoteeRepository {
	return &devoteeRepository{pool: pool}
}

func (r *devoteeRepository) Create(ctx context.Context, devotee *domain.Devotee) error {
	const query = `
        INSERT INTO devotees (email, password_hash, first_name, last_name, spiritual_name,
            city, bio, interests, spiritual_practices, is_verified, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		devotee.Email,
		devotee.PasswordHash,
		devotee.FirstName,
		devotee.LastName,
		devotee.SpiritualName,
		devotee.City,
		devotee.Bio,
		devotee.Interests,
		devotee.SpiritualPractices,
		devotee.IsVerified,
		devotee.IsActive,
	).Scan(&devotee.ID, &devotee.CreatedAt, &devotee.UpdatedAt)
}

func (r *devoteeRepository) Update(ctx context.Context, devotee *domain.Devotee) error {
	const query = `
        UPDATE devotees SET first_name=$1, last_name=$2, spiritual_name=$3, city=$4, bio=$5,
            interests=$6, spiritual_practices=$7, is_verified=$8, is_active=$9, updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		devotee.FirstName,
		devotee.LastName,
		devotee.SpiritualName,
		devotee.City,
		devotee.Bio,
		devotee.Interests,
		devotee.SpiritualPractices,
		devotee.IsVerified,
		devotee.IsActive,
		devotee.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *devoteeRepository) GetByID(ctx context.Context, id string) (*domain.Devotee, error) {
	const query = devoteeSelect + ` WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *devoteeRepository) GetByEmail(ctx context.Context, email string) (*domain.Devotee, error) {
	const query = devoteeSelect + ` WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

const devoteeSelect = `
        SELECT id, email, password_hash, first_name, last_name, spiritual_name, city, bio,
               interests, spiritual_practices, is_verified, is_active, created_at, updated_at
        FROM devotees`

func (r *devoteeRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Devotee, error) {
	var devotee domain.Devotee
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&devotee.ID,
		&devotee.Email,
		&devotee.PasswordHash,
		&devotee.FirstName,
		&devotee.LastName,
		&devotee.SpiritualName,
		&devotee.City,
		&devotee.Bio,
		&devotee.Interests,
		&devotee.SpiritualPractices,
		&devotee.IsVerified,
		&devotee.IsActive,
		&devotee.CreatedAt,
		&devotee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &devotee, nil
}
