package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// EventRepository encapsulates community event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, status *domain.SubmissionStatus) ([]domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Approve(ctx context.Context, id string, now time.Time) error
	Reject(ctx context.Context, id string, notes *string, now time.Time) error
	// SoftDelete marks the event rejected and inactive; rows are never removed.
	SoftDelete(ctx context.Context, id string, now time.Time) error
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
	Stats(ctx context.Context) (domain.SubmissionStats, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

const eventColumns = `
        id, title, description, category, venue, city, start_date, start_time, end_time,
        organizer_devotee_id, contact_email, image_url, status, is_active, submitted_at,
        reviewed_at, review_notes`

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (title, description, category, venue, city, start_date, start_time,
            end_time, organizer_devotee_id, contact_email, image_url, status, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, submitted_at`
	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.Category,
		event.Venue,
		event.City,
		event.StartDate,
		event.StartTime,
		event.EndTime,
		event.OrganizerDevoteeID,
		event.ContactEmail,
		event.ImageURL,
		event.Status,
		event.IsActive,
	).Scan(&event.ID, &event.SubmittedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanEvent(row)
}

func (r *eventRepository) List(ctx context.Context, status *domain.SubmissionStatus) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	args := []any{}
	if status != nil {
		args = append(args, *status)
		query += ` WHERE status=$1`
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events SET title=$1, description=$2, category=$3, venue=$4, city=$5,
            start_date=$6, start_time=$7, end_time=$8, contact_email=$9, image_url=$10
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		event.Title,
		event.Description,
		event.Category,
		event.Venue,
		event.City,
		event.StartDate,
		event.StartTime,
		event.EndTime,
		event.ContactEmail,
		event.ImageURL,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) Approve(ctx context.Context, id string, now time.Time) error {
	const query = `
        UPDATE events SET status='approved', reviewed_at=$2
        WHERE id=$1 AND status='pending'`
	return r.guardedTransition(ctx, query, id, now)
}

func (r *eventRepository) Reject(ctx context.Context, id string, notes *string, now time.Time) error {
	const query = `
        UPDATE events SET status='rejected', reviewed_at=$2, review_notes=$3
        WHERE id=$1 AND status='pending'`
	return r.guardedTransition(ctx, query, id, now, notes)
}

func (r *eventRepository) guardedTransition(ctx context.Context, query, id string, now time.Time, extra ...any) error {
	args := append([]any{id, now}, extra...)
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		var status domain.SubmissionStatus
		err := r.pool.QueryRow(ctx, `SELECT status FROM events WHERE id=$1`, id).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return pgx.ErrNoRows
			}
			return err
		}
		return ErrNotPending
	}
	return nil
}

func (r *eventRepository) SoftDelete(ctx context.Context, id string, now time.Time) error {
	const query = `
        UPDATE events SET status='rejected', is_active=FALSE, reviewed_at=$2
        WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id, now)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + eventColumns + `
        FROM events
        WHERE status = 'approved' AND is_active = TRUE AND start_date >= $1
        ORDER BY start_date ASC, start_time ASC
        LIMIT $2`
	rows, err := r.pool.Query(ctx, query, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *eventRepository) Stats(ctx context.Context) (domain.SubmissionStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'pending'),
               COUNT(*) FILTER (WHERE status = 'approved'),
               COUNT(*) FILTER (WHERE status = 'rejected')
        FROM events`
	var stats domain.SubmissionStats
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Approved,
		&stats.Rejected,
	); err != nil {
		return domain.SubmissionStats{}, err
	}
	return stats, nil
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var event domain.Event
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.Venue,
		&event.City,
		&event.StartDate,
		&event.StartTime,
		&event.EndTime,
		&event.OrganizerDevoteeID,
		&event.ContactEmail,
		&event.ImageURL,
		&event.Status,
		&event.IsActive,
		&event.SubmittedAt,
		&event.ReviewedAt,
		&event.ReviewNotes,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

func scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	var result []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *event)
	}
	return result, rows.Err()
}
