package shift

import "context"

type ShiftRepository interface {
	// Create persists the shift together with its day rules and exceptions.
	Create(ctx context.Context, s Shift) (Shift, error)

	// GetByID retrieves a shift with its day rules and exceptions, with
	// customer isolation.
	GetByID(ctx context.Context, id string, customerID string) (Shift, error)

	List(ctx context.Context, customerID string) ([]Shift, error)

	// Update replaces the shift's fields, day rules and exceptions.
	Update(ctx context.Context, s Shift) error

	Delete(ctx context.Context, id string, customerID string) error
}
