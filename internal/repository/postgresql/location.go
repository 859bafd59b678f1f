package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/location"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/database"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

const locationColumns = `id, customer_id, name, latitude, longitude, radius_meters, created_at, updated_at`

func scanLocation(row pgx.Row) (location.Location, error) {
	var loc location.Location
	err := row.Scan(
		&loc.ID,
		&loc.CustomerID,
		&loc.Name,
		&loc.Latitude,
		&loc.Longitude,
		&loc.RadiusMeters,
		&loc.CreatedAt,
		&loc.UpdatedAt,
	)
	return loc, err
}

// Create implements location.LocationRepository.
func (r *locationRepositoryImpl) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	if loc.ID == "" {
		loc.ID = uuid.NewString()
	}

	query := `
		INSERT INTO locations (id, customer_id, name, latitude, longitude, radius_meters)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + locationColumns

	created, err := scanLocation(q.QueryRow(ctx, query,
		loc.ID,
		loc.CustomerID,
		loc.Name,
		loc.Latitude,
		loc.Longitude,
		loc.RadiusMeters,
	))
	if err != nil {
		return location.Location{}, err
	}

	return created, nil
}

// GetByID implements location.LocationRepository.
func (r *locationRepositoryImpl) GetByID(ctx context.Context, id string, customerID string) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1 AND customer_id = $2`

	found, err := scanLocation(q.QueryRow(ctx, query, id, customerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return location.Location{}, location.ErrLocationNotFound
	}
	if err != nil {
		return location.Location{}, err
	}

	return found, nil
}

// List implements location.LocationRepository.
func (r *locationRepositoryImpl) List(ctx context.Context, customerID string) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + locationColumns + ` FROM locations WHERE customer_id = $1 ORDER BY name ASC`

	rows, err := q.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// Update implements location.LocationRepository.
func (r *locationRepositoryImpl) Update(ctx context.Context, loc location.Location) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE locations
		SET name = $1, latitude = $2, longitude = $3, radius_meters = $4, updated_at = NOW()
		WHERE id = $5 AND customer_id = $6
	`

	tag, err := q.Exec(ctx, query, loc.Name, loc.Latitude, loc.Longitude, loc.RadiusMeters, loc.ID, loc.CustomerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}

// Delete implements location.LocationRepository.
func (r *locationRepositoryImpl) Delete(ctx context.Context, id string, customerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM locations WHERE id = $1 AND customer_id = $2`, id, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}
