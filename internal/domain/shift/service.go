package shift

import "context"

type ShiftService interface {
	Create(ctx context.Context, customerID string, req UpsertShiftRequest) (ShiftResponse, error)

	List(ctx context.Context, customerID string) ([]ShiftResponse, error)

	Get(ctx context.Context, customerID string, id string) (ShiftResponse, error)

	// Update replaces the shift's fields and rule rows wholesale.
	Update(ctx context.Context, customerID string, id string, req UpsertShiftRequest) (ShiftResponse, error)

	Delete(ctx context.Context, customerID string, id string) error
}
