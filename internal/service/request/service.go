package request

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/request"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
)

type RequestServiceImpl struct {
	request.RequestRepository
	user.UserRepository
	now func() time.Time
}

func NewRequestService(
	requestRepository request.RequestRepository,
	userRepository user.UserRepository,
) request.RequestService {
	return &RequestServiceImpl{
		RequestRepository: requestRepository,
		UserRepository:    userRepository,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// Create implements request.RequestService.
func (s *RequestServiceImpl) Create(ctx context.Context, creatorID string, req request.CreateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	creator, err := s.UserRepository.GetByID(ctx, creatorID)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if creator.CustomerID == nil {
		return request.RequestResponse{}, user.ErrUserNotFound
	}

	startDate, _ := time.Parse(time.RFC3339, req.StartDate)
	endDate, _ := time.Parse(time.RFC3339, req.EndDate)

	created, err := s.RequestRepository.Create(ctx, request.Request{
		CreatorID:   creatorID,
		CustomerID:  *creator.CustomerID,
		RequestType: request.RequestType(req.RequestType),
		Status:      request.StatusPending,
		StartDate:   startDate.UTC(),
		EndDate:     endDate.UTC(),
		Note:        req.Note,
	})
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	created.CreatorName = &creator.Name
	return request.ToResponse(created), nil
}

// ListMine implements request.RequestService.
func (s *RequestServiceImpl) ListMine(ctx context.Context, creatorID string) ([]request.RequestResponse, error) {
	requests, err := s.RequestRepository.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListForCustomer implements request.RequestService.
func (s *RequestServiceImpl) ListForCustomer(ctx context.Context, customerID string) ([]request.RequestResponse, error) {
	requests, err := s.RequestRepository.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return toResponses(requests), nil
}

// Review implements request.RequestService.
func (s *RequestServiceImpl) Review(ctx context.Context, customerID string, requestID string, req request.UpdateStatusRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	existing, err := s.RequestRepository.GetByID(ctx, requestID, customerID)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if existing.Status != request.StatusPending {
		return request.RequestResponse{}, request.ErrRequestAlreadyReviewed
	}

	reviewedAt := s.now()
	if err := s.RequestRepository.UpdateStatus(ctx, requestID, request.Status(req.Status), reviewedAt); err != nil {
		return request.RequestResponse{}, err
	}

	existing.Status = request.Status(req.Status)
	existing.ReviewedAt = &reviewedAt
	return request.ToResponse(existing), nil
}

func toResponses(requests []request.Request) []request.RequestResponse {
	responses := make([]request.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, request.ToResponse(req))
	}
	return responses
}
