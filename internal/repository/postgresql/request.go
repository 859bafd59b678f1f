package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/request"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

const requestColumns = `r.id, r.creator_id, r.customer_id, r.request_type, r.status, r.start_date, r.end_date, r.note, r.reviewed_at, r.created_at, r.updated_at, u.name`

func scanRequest(row pgx.Row) (request.Request, error) {
	var req request.Request
	err := row.Scan(
		&req.ID,
		&req.CreatorID,
		&req.CustomerID,
		&req.RequestType,
		&req.Status,
		&req.StartDate,
		&req.EndDate,
		&req.Note,
		&req.ReviewedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.CreatorName,
	)
	return req, err
}

// Create implements request.RequestRepository.
func (r *requestRepositoryImpl) Create(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `
		INSERT INTO requests (id, creator_id, customer_id, request_type, status, start_date, end_date, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.CreatorID,
		req.CustomerID,
		req.RequestType,
		req.Status,
		req.StartDate,
		req.EndDate,
		req.Note,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return request.Request{}, err
	}

	return req, nil
}

// GetByID implements request.RequestRepository.
func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string, customerID string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM requests r
		JOIN users u ON u.id = r.creator_id
		WHERE r.id = $1 AND r.customer_id = $2
	`

	req, err := scanRequest(q.QueryRow(ctx, query, id, customerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return request.Request{}, request.ErrRequestNotFound
	}
	if err != nil {
		return request.Request{}, err
	}

	return req, nil
}

// ListByCreator implements request.RequestRepository.
func (r *requestRepositoryImpl) ListByCreator(ctx context.Context, creatorID string) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM requests r
		JOIN users u ON u.id = r.creator_id
		WHERE r.creator_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := q.Query(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListByCustomer implements request.RequestRepository.
func (r *requestRepositoryImpl) ListByCustomer(ctx context.Context, customerID string) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM requests r
		JOIN users u ON u.id = r.creator_id
		WHERE r.customer_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := q.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListByCreatorOverlapping implements request.RequestRepository.
func (r *requestRepositoryImpl) ListByCreatorOverlapping(ctx context.Context, creatorID string, start, end time.Time) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM requests r
		JOIN users u ON u.id = r.creator_id
		WHERE r.creator_id = $1 AND r.start_date <= $3 AND r.end_date >= $2
		ORDER BY r.start_date ASC
	`

	rows, err := q.Query(ctx, query, creatorID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListByCreatorsOverlapping implements request.RequestRepository.
func (r *requestRepositoryImpl) ListByCreatorsOverlapping(ctx context.Context, creatorIDs []string, start, end time.Time) ([]request.Request, error) {
	if len(creatorIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM requests r
		JOIN users u ON u.id = r.creator_id
		WHERE r.creator_id = ANY($1) AND r.start_date <= $3 AND r.end_date >= $2
		ORDER BY r.start_date ASC
	`

	rows, err := q.Query(ctx, query, creatorIDs, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRequests(rows)
}

// UpdateStatus implements request.RequestRepository. Only pending requests
// match; a reviewed request stays reviewed.
func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status, reviewedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE requests
		SET status = $1, reviewed_at = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, status, reviewedAt, id, request.StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestAlreadyReviewed
	}

	return nil
}

func collectRequests(rows pgx.Rows) ([]request.Request, error) {
	var requests []request.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
