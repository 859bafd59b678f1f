package user

import "context"

// UserFilter narrows employee listings.
type UserFilter struct {
	LocationID *string
	ShiftID    *string
}

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	GetByEmail(ctx context.Context, email string) (User, error)

	// ListEmployees retrieves employee accounts owned by a customer,
	// optionally filtered by location or shift.
	ListEmployees(ctx context.Context, customerID string, filter UserFilter) ([]User, error)

	Update(ctx context.Context, u User) error
}
