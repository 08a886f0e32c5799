package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// ErrSessionInvalid covers unknown, expired, and deactivated-owner sessions.
// Callers must not distinguish the cases; lookup fails closed.
var ErrSessionInvalid = errors.New("session invalid")

// SessionRepository persists devotee sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// Lookup resolves a token to its owning devotee. It returns
	// ErrSessionInvalid when the token is unknown, the session is expired,
	// or the devotee is inactive. Expired rows are deleted on observation.
	Lookup(ctx context.Context, token string, now time.Time) (*domain.Devotee, *domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a Postgres-backed implementation.
func NewSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepository{pool: pool}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	const query = `
        INSERT INTO sessions (token, devotee_id, expires_at)
        VALUES ($1, $2, $3)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		session.Token,
		session.DevoteeID,
		session.ExpiresAt,
	).Scan(&session.CreatedAt)
}

func (r *sessionRepository) Lookup(ctx context.Context, token string, now time.Time) (*domain.Devotee, *domain.Session, error) {
	const query = `
        SELECT s.token, s.devotee_id, s.expires_at, s.created_at,
               d.id, d.email, d.password_hash, d.first_name, d.last_name, d.spiritual_name,
               d.city, d.bio, d.interests, d.spiritual_practices, d.is_verified, d.is_active,
               d.created_at, d.updated_at
        FROM sessions s
        JOIN devotees d ON d.id = s.devotee_id
        WHERE s.token = $1`

	var session domain.Session
	var devotee domain.Devotee
	if err := r.pool.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.DevoteeID,
		&session.ExpiresAt,
		&session.CreatedAt,
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrSessionInvalid
		}
		return nil, nil, err
	}

	if session.Expired(now) {
		_ = r.Delete(ctx, token)
		return nil, nil, ErrSessionInvalid
	}
	if !devotee.IsActive {
		return nil, nil, ErrSessionInvalid
	}
	return &devotee, &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	const query = `DELETE FROM sessions WHERE token = $1`
	_, err := r.pool.Exec(ctx, query, token)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at < $1`
	cmd, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
