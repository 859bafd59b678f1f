package request

import "context"

type RequestService interface {
	// Create files a pending leave or overtime request for the caller.
	Create(ctx context.Context, creatorID string, req CreateRequestRequest) (RequestResponse, error)

	ListMine(ctx context.Context, creatorID string) ([]RequestResponse, error)

	ListForCustomer(ctx context.Context, customerID string) ([]RequestResponse, error)

	// Review accepts or rejects a pending request exactly once.
	Review(ctx context.Context, customerID string, requestID string, req UpdateStatusRequest) (RequestResponse, error)
}
