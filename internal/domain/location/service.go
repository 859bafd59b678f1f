package location

import "context"

type LocationService interface {
	Create(ctx context.Context, customerID string, req UpsertLocationRequest) (LocationResponse, error)

	List(ctx context.Context, customerID string) ([]LocationResponse, error)

	Get(ctx context.Context, customerID string, id string) (LocationResponse, error)

	Update(ctx context.Context, customerID string, id string, req UpsertLocationRequest) (LocationResponse, error)

	Delete(ctx context.Context, customerID string, id string) error
}
