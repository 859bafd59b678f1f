package user

import "time"

type Role string

const (
	// RoleCustomer is an employer account that owns locations, shifts and
	// employee accounts.
	RoleCustomer Role = "customer"
	// RoleEmployee is a worker account that checks in/out and files requests.
	RoleEmployee Role = "employee"
)

type User struct {
	ID           string
	CustomerID   *string // owning customer; nil for customer accounts
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	LocationID   *string
	ShiftID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
