package user

import "context"

type UserService interface {
	// CreateEmployee creates an employee account owned by a customer.
	CreateEmployee(ctx context.Context, customerID string, req CreateEmployeeRequest) (UserResponse, error)

	ListEmployees(ctx context.Context, customerID string, filter UserFilter) ([]UserResponse, error)

	GetEmployee(ctx context.Context, customerID string, id string) (UserResponse, error)

	UpdateEmployee(ctx context.Context, customerID string, id string, req UpdateEmployeeRequest) (UserResponse, error)

	// GetProfile returns the caller's own account.
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
}
