package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjeevduttpandey/HindTempleDirectory-sub001/internal/domain"
)

// ErrNotPending signals a status transition attempted on a submission that
// already left the pending state.
var ErrNotPending = errors.New("submission is not pending")

// BusinessRepository encapsulates submission and listing persistence.
type BusinessRepository interface {
	CreateSubmission(ctx context.Context, sub *domain.BusinessSubmission) error
	GetSubmissionByID(ctx context.Context, id string) (*domain.BusinessSubmission, error)
	ListSubmissions(ctx context.Context, status *domain.SubmissionStatus) ([]domain.BusinessSubmission, error)
	UpdateSubmission(ctx context.Context, sub *domain.BusinessSubmission) error
	Stats(ctx context.Context) (domain.SubmissionStats, error)

	// Approve transitions pending -> approved and creates the derived
	// listing in one transaction. Returns pgx.ErrNoRows for unknown ids and
	// ErrNotPending when the submission already left pending, in which case
	// no second listing is ever created.
	Approve(ctx context.Context, id string, now time.Time) (*domain.ApprovedBusiness, error)
	Reject(ctx context.Context, id string, notes *string, now time.Time) error

	ListApproved(ctx context.Context) ([]domain.BusinessListing, error)
	GetApprovedBySubmissionID(ctx context.Context, submissionID string) (*domain.BusinessListing, error)
	SetListingActive(ctx context.Context, submissionID string, active bool) error
}

type businessRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository instantiates repository.
func NewBusinessRepository(pool *pgxpool.Pool) BusinessRepository {
	return &businessRepository{pool: pool}
}

const submissionColumns = `
        id, name, category, description, address, city, phone, email, website,
        owner_name, owner_email, owner_phone, services, social_links, operating_hours,
        special_offers, images, status, submitted_at, reviewed_at, review_notes`

func (r *businessRepository) CreateSubmission(ctx context.Context, sub *domain.BusinessSubmission) error {
	const query = `
        INSERT INTO business_submissions (name, category, description, address, city, phone,
            email, website, owner_name, owner_email, owner_phone, services, social_links,
            operating_hours, special_offers, images, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
        RETURNING id, submitted_at`
	return r.pool.QueryRow(ctx, query,
		sub.Name,
		sub.Category,
		sub.Description,
		sub.Address,
		sub.City,
		sub.Phone,
		sub.Email,
		sub.Website,
		sub.OwnerName,
		sub.OwnerEmail,
		sub.OwnerPhone,
		sub.Services,
		sub.SocialLinks,
		sub.OperatingHours,
		sub.SpecialOffers,
		sub.Images,
		sub.Status,
	).Scan(&sub.ID, &sub.SubmittedAt)
}

func (r *businessRepository) GetSubmissionByID(ctx context.Context, id string) (*domain.BusinessSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM business_submissions WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanSubmission(row)
}

func (r *businessRepository) ListSubmissions(ctx context.Context, status *domain.SubmissionStatus) ([]domain.BusinessSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM business_submissions`
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

	var result []domain.BusinessSubmission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *sub)
	}
	return result, rows.Err()
}

func (r *businessRepository) UpdateSubmission(ctx context.Context, sub *domain.BusinessSubmission) error {
	const query = `
        UPDATE business_submissions SET name=$1, category=$2, description=$3, address=$4,
            city=$5, phone=$6, email=$7, website=$8, owner_name=$9, owner_email=$10,
            owner_phone=$11, services=$12, social_links=$13, operating_hours=$14,
            special_offers=$15, images=$16
        WHERE id=$17`
	cmd, err := r.pool.Exec(ctx, query,
		sub.Name,
		sub.Category,
		sub.Description,
		sub.Address,
		sub.City,
		sub.Phone,
		sub.Email,
		sub.Website,
		sub.OwnerName,
		sub.OwnerEmail,
		sub.OwnerPhone,
		sub.Services,
		sub.SocialLinks,
		sub.OperatingHours,
		sub.SpecialOffers,
		sub.Images,
		sub.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *businessRepository) Stats(ctx context.Context) (domain.SubmissionStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'pending'),
               COUNT(*) FILTER (WHERE status = 'approved'),
               COUNT(*) FILTER (WHERE status = 'rejected')
        FROM business_submissions`
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

func (r *businessRepository) Approve(ctx context.Context, id string, now time.Time) (*domain.ApprovedBusiness, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const transition = `
        UPDATE business_submissions SET status='approved', reviewed_at=$2
        WHERE id=$1 AND status='pending'`
	cmd, err := tx.Exec(ctx, transition, id, now)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, r.classifyGuardFailure(ctx, id)
	}

	listing := &domain.ApprovedBusiness{
		SubmissionID: id,
		Rating:       domain.DefaultListingRating,
		IsActive:     true,
		ApprovedAt:   now,
	}
	const insert = `
        INSERT INTO approved_businesses (submission_id, rating, is_active, approved_at)
        VALUES ($1, $2, TRUE, $3)
        RETURNING id, total_reviews`
	if err := tx.QueryRow(ctx, insert, id, listing.Rating, now).Scan(&listing.ID, &listing.TotalReviews); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return listing, nil
}

func (r *businessRepository) Reject(ctx context.Context, id string, notes *string, now time.Time) error {
	const query = `
        UPDATE business_submissions SET status='rejected', reviewed_at=$2, review_notes=$3
        WHERE id=$1 AND status='pending'`
	cmd, err := r.pool.Exec(ctx, query, id, now, notes)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return r.classifyGuardFailure(ctx, id)
	}
	return nil
}

// classifyGuardFailure distinguishes an unknown id from a lost status race.
func (r *businessRepository) classifyGuardFailure(ctx context.Context, id string) error {
	var status domain.SubmissionStatus
	err := r.pool.QueryRow(ctx, `SELECT status FROM business_submissions WHERE id=$1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgx.ErrNoRows
		}
		return err
	}
	return ErrNotPending
}

const listingJoin = `
        SELECT ab.id, ab.submission_id, ab.rating, ab.total_reviews, ab.is_active, ab.approved_at,
               ` + submissionColumnsQualified + `
        FROM approved_businesses ab
        JOIN business_submissions bs ON bs.id = ab.submission_id`

const submissionColumnsQualified = `
        bs.id, bs.name, bs.category, bs.description, bs.address, bs.city, bs.phone, bs.email,
        bs.website, bs.owner_name, bs.owner_email, bs.owner_phone, bs.services, bs.social_links,
        bs.operating_hours, bs.special_offers, bs.images, bs.status, bs.submitted_at,
        bs.reviewed_at, bs.review_notes`

func (r *businessRepository) ListApproved(ctx context.Context) ([]domain.BusinessListing, error) {
	query := listingJoin + `
        WHERE bs.status = 'approved' AND ab.is_active = TRUE
        ORDER BY ab.approved_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.BusinessListing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *listing)
	}
	return result, rows.Err()
}

func (r *businessRepository) GetApprovedBySubmissionID(ctx context.Context, submissionID string) (*domain.BusinessListing, error) {
	query := listingJoin + ` WHERE ab.submission_id = $1`
	row := r.pool.QueryRow(ctx, query, submissionID)
	return scanListing(row)
}

func (r *businessRepository) SetListingActive(ctx context.Context, submissionID string, active bool) error {
	const query = `UPDATE approved_businesses SET is_active=$2 WHERE submission_id=$1`
	cmd, err := r.pool.Exec(ctx, query, submissionID, active)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*domain.BusinessSubmission, error) {
	var sub domain.BusinessSubmission
	if err := row.Scan(
		&sub.ID,
		&sub.Name,
		&sub.Category,
		&sub.Description,
		&sub.Address,
		&sub.City,
		&sub.Phone,
		&sub.Email,
		&sub.Website,
		&sub.OwnerName,
		&sub.OwnerEmail,
		&sub.OwnerPhone,
		&sub.Services,
		&sub.SocialLinks,
		&sub.OperatingHours,
		&sub.SpecialOffers,
		&sub.Images,
		&sub.Status,
		&sub.SubmittedAt,
		&sub.ReviewedAt,
		&sub.ReviewNotes,
	); err != nil {
		return nil, err
	}
	return &sub, nil
}

func scanListing(row rowScanner) (*domain.BusinessListing, error) {
	var listing domain.BusinessListing
	if err := row.Scan(
		&listing.Listing.ID,
		&listing.Listing.SubmissionID,
		&listing.Listing.Rating,
		&listing.Listing.TotalReviews,
		&listing.Listing.IsActive,
		&listing.Listing.ApprovedAt,
		&listing.Submission.ID,
		&listing.Submission.Name,
		&listing.Submission.Category,
		&listing.Submission.Description,
		&listing.Submission.Address,
		&listing.Submission.City,
		&listing.Submission.Phone,
		&listing.Submission.Email,
		&listing.Submission.Website,
		&listing.Submission.OwnerName,
		&listing.Submission.OwnerEmail,
		&listing.Submission.OwnerPhone,
		&listing.Submission.Services,
		&listing.Submission.SocialLinks,
		&listing.Submission.OperatingHours,
		&listing.Submission.SpecialOffers,
		&listing.Submission.Images,
		&listing.Submission.Status,
		&listing.Submission.SubmittedAt,
		&listing.Submission.ReviewedAt,
		&listing.Submission.ReviewNotes,
	); err != nil {
		return nil, err
	}
	return &listing, nil
}
