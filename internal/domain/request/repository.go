package request

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a request with customer isolation.
	GetByID(ctx context.Context, id string, customerID string) (Request, error)

	ListByCreator(ctx context.Context, creatorID string) ([]Request, error)

	ListByCustomer(ctx context.Context, customerID string) ([]Request, error)

	// ListByCreatorOverlapping retrieves a creator's requests whose
	// [StartDate, EndDate] overlaps the given range.
	ListByCreatorOverlapping(ctx context.Context, creatorID string, start, end time.Time) ([]Request, error)

	// ListByCreatorsOverlapping is the bulk variant used by team reports.
	ListByCreatorsOverlapping(ctx context.Context, creatorIDs []string, start, end time.Time) ([]Request, error)

	// UpdateStatus stamps the review decision and time.
	UpdateStatus(ctx context.Context, id string, status Status, reviewedAt time.Time) error
}
