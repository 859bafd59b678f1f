package shift

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/workpulse-backend-go/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
}

func NewShiftService(db *database.DB, shiftRepository shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{db: db, ShiftRepository: shiftRepository}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, customerID string, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	entity := req.ToEntity(customerID)

	var created shift.Shift
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.ShiftRepository.Create(txCtx, entity)
		if err != nil {
			return fmt.Errorf("failed to create shift: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(created), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context, customerID string) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses, nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, customerID string, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id, customerID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(sh), nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, customerID string, id string, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	entity := req.ToEntity(customerID)
	entity.ID = id

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.ShiftRepository.Update(txCtx, entity); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	updated, err := s.ShiftRepository.GetByID(ctx, id, customerID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(updated), nil
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, customerID string, id string) error {
	return s.ShiftRepository.Delete(ctx, id, customerID)
}
