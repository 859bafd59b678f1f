package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/location"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	location.LocationRepository
	shift.ShiftRepository
}

func NewUserService(
	userRepository user.UserRepository,
	locationRepository location.LocationRepository,
	shiftRepository shift.ShiftRepository,
) user.UserService {
	return &UserServiceImpl{
		UserRepository:     userRepository,
		LocationRepository: locationRepository,
		ShiftRepository:    shiftRepository,
	}
}

// CreateEmployee implements user.UserService.
func (s *UserServiceImpl) CreateEmployee(ctx context.Context, customerID string, req user.CreateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.checkAssignments(ctx, customerID, req.LocationID, req.ShiftID); err != nil {
		return user.UserResponse{}, err
	}

	_, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		CustomerID:   &customerID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		LocationID:   req.LocationID,
		ShiftID:      req.ShiftID,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return user.ToResponse(created), nil
}

// ListEmployees implements user.UserService.
func (s *UserServiceImpl) ListEmployees(ctx context.Context, customerID string, filter user.UserFilter) ([]user.UserResponse, error) {
	employees, err := s.UserRepository.ListEmployees(ctx, customerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, user.ToResponse(emp))
	}
	return responses, nil
}

// GetEmployee implements user.UserService.
func (s *UserServiceImpl) GetEmployee(ctx context.Context, customerID string, id string) (user.UserResponse, error) {
	emp, err := s.ownedEmployee(ctx, customerID, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(emp), nil
}

// UpdateEmployee implements user.UserService.
func (s *UserServiceImpl) UpdateEmployee(ctx context.Context, customerID string, id string, req user.UpdateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	emp, err := s.ownedEmployee(ctx, customerID, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := s.checkAssignments(ctx, customerID, req.LocationID, req.ShiftID); err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.LocationID != nil {
		emp.LocationID = req.LocationID
	}
	if req.ShiftID != nil {
		emp.ShiftID = req.ShiftID
	}

	if err := s.UserRepository.Update(ctx, emp); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return user.ToResponse(emp), nil
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// ownedEmployee loads an employee and verifies the customer owns it.
func (s *UserServiceImpl) ownedEmployee(ctx context.Context, customerID string, id string) (user.User, error) {
	emp, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	if emp.Role != user.RoleEmployee || emp.CustomerID == nil || *emp.CustomerID != customerID {
		return user.User{}, user.ErrUserNotFound
	}
	return emp, nil
}

// checkAssignments verifies referenced location and shift exist and belong to
// the customer.
func (s *UserServiceImpl) checkAssignments(ctx context.Context, customerID string, locationID, shiftID *string) error {
	if locationID != nil {
		if _, err := s.LocationRepository.GetByID(ctx, *locationID, customerID); err != nil {
			return err
		}
	}
	if shiftID != nil {
		if _, err := s.ShiftRepository.GetByID(ctx, *shiftID, customerID); err != nil {
			return err
		}
	}
	return nil
}
