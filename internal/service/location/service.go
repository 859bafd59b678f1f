package location

import (
	"context"
	"fmt"

	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/location"
)

type LocationServiceImpl struct {
	location.LocationRepository
}

func NewLocationService(locationRepository location.LocationRepository) location.LocationService {
	return &LocationServiceImpl{LocationRepository: locationRepository}
}

// Create implements location.LocationService.
func (s *LocationServiceImpl) Create(ctx context.Context, customerID string, req location.UpsertLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	created, err := s.LocationRepository.Create(ctx, location.Location{
		CustomerID:   customerID,
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	})
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to create location: %w", err)
	}

	return location.ToResponse(created), nil
}

// List implements location.LocationService.
func (s *LocationServiceImpl) List(ctx context.Context, customerID string) ([]location.LocationResponse, error) {
	locations, err := s.LocationRepository.List(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, location.ToResponse(loc))
	}
	return responses, nil
}

// Get implements location.LocationService.
func (s *LocationServiceImpl) Get(ctx context.Context, customerID string, id string) (location.LocationResponse, error) {
	loc, err := s.LocationRepository.GetByID(ctx, id, customerID)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return location.ToResponse(loc), nil
}

// Update implements location.LocationService.
func (s *LocationServiceImpl) Update(ctx context.Context, customerID string, id string, req location.UpsertLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	loc, err := s.LocationRepository.GetByID(ctx, id, customerID)
	if err != nil {
		return location.LocationResponse{}, err
	}

	loc.Name = req.Name
	loc.Latitude = req.Latitude
	loc.Longitude = req.Longitude
	loc.RadiusMeters = req.RadiusMeters

	if err := s.LocationRepository.Update(ctx, loc); err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to update location: %w", err)
	}

	return location.ToResponse(loc), nil
}

// Delete implements location.LocationService.
func (s *LocationServiceImpl) Delete(ctx context.Context, customerID string, id string) error {
	return s.LocationRepository.Delete(ctx, id, customerID)
}
