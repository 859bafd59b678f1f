package location

import "context"

type LocationRepository interface {
	Create(ctx context.Context, loc Location) (Location, error)

	// GetByID retrieves a location with customer isolation.
	GetByID(ctx context.Context, id string, customerID string) (Location, error)

	List(ctx context.Context, customerID string) ([]Location, error)

	Update(ctx context.Context, loc Location) error

	Delete(ctx context.Context, id string, customerID string) error
}
