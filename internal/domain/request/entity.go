package request

import "time"

type RequestType string

const (
	TypeLeave    RequestType = "leave"
	TypeOvertime RequestType = "overtime"
)

var RequestTypeValues = []string{
	string(TypeLeave),
	string(TypeOvertime),
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Request is an employee-submitted leave or overtime request. It is created
// pending and reviewed exactly once; a non-pending request can never change
// status again.
type Request struct {
	ID          string
	CreatorID   string
	CustomerID  string
	RequestType RequestType
	Status      Status
	StartDate   time.Time
	EndDate     time.Time
	Note        string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	CreatorName *string
}
