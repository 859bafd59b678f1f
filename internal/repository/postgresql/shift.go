package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository. Callers wrap it in a transaction
// so the shift row and its rule rows land together.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO shifts (id, customer_id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.CustomerID, s.Name, s.StartDate, s.EndDate).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, err
	}

	if err := r.insertRules(ctx, q, &s); err != nil {
		return shift.Shift{}, err
	}

	return s, nil
}

func (r *shiftRepositoryImpl) insertRules(ctx context.Context, q database.Querier, s *shift.Shift) error {
	dayQuery := `
		INSERT INTO shift_days (id, shift_id, day, is_off_day, times)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i := range s.Days {
		if s.Days[i].ID == "" {
			s.Days[i].ID = uuid.NewString()
		}
		s.Days[i].ShiftID = s.ID
		day := s.Days[i]
		if _, err := q.Exec(ctx, dayQuery, day.ID, day.ShiftID, day.Day, day.IsOffDay, day.Times); err != nil {
			return err
		}
	}

	excQuery := `
		INSERT INTO shift_exception_days (id, shift_id, date, times)
		VALUES ($1, $2, $3, $4)
	`
	for i := range s.ExceptionDays {
		if s.ExceptionDays[i].ID == "" {
			s.ExceptionDays[i].ID = uuid.NewString()
		}
		s.ExceptionDays[i].ShiftID = s.ID
		exc := s.ExceptionDays[i]
		if _, err := q.Exec(ctx, excQuery, exc.ID, exc.ShiftID, exc.Date, exc.Times); err != nil {
			return err
		}
	}

	return nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string, customerID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, customer_id, name, start_date, end_date, created_at, updated_at
		FROM shifts
		WHERE id = $1 AND customer_id = $2
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id, customerID).Scan(
		&s.ID, &s.CustomerID, &s.Name, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	if err != nil {
		return shift.Shift{}, err
	}

	if err := r.loadRules(ctx, q, &s); err != nil {
		return shift.Shift{}, err
	}

	return s, nil
}

func (r *shiftRepositoryImpl) loadRules(ctx context.Context, q database.Querier, s *shift.Shift) error {
	dayRows, err := q.Query(ctx, `
		SELECT id, shift_id, day, is_off_day, times
		FROM shift_days
		WHERE shift_id = $1
		ORDER BY day ASC
	`, s.ID)
	if err != nil {
		return err
	}
	defer dayRows.Close()

	for dayRows.Next() {
		var day shift.ShiftDay
		if err := dayRows.Scan(&day.ID, &day.ShiftID, &day.Day, &day.IsOffDay, &day.Times); err != nil {
			return err
		}
		s.Days = append(s.Days, day)
	}
	if err := dayRows.Err(); err != nil {
		return err
	}

	excRows, err := q.Query(ctx, `
		SELECT id, shift_id, date, times
		FROM shift_exception_days
		WHERE shift_id = $1
		ORDER BY date ASC
	`, s.ID)
	if err != nil {
		return err
	}
	defer excRows.Close()

	for excRows.Next() {
		var exc shift.ExceptionDay
		if err := excRows.Scan(&exc.ID, &exc.ShiftID, &exc.Date, &exc.Times); err != nil {
			return err
		}
		s.ExceptionDays = append(s.ExceptionDays, exc)
	}

	return excRows.Err()
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, customerID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, customer_id, name, start_date, end_date, created_at, updated_at
		FROM shifts
		WHERE customer_id = $1
		ORDER BY name ASC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.Name, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range shifts {
		if err := r.loadRules(ctx, q, &shifts[i]); err != nil {
			return nil, err
		}
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository. Rule rows are replaced wholesale;
// callers wrap it in a transaction.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE shifts
		SET name = $1, start_date = $2, end_date = $3, updated_at = NOW()
		WHERE id = $4 AND customer_id = $5
	`, s.Name, s.StartDate, s.EndDate, s.ID, s.CustomerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	if _, err := q.Exec(ctx, `DELETE FROM shift_days WHERE shift_id = $1`, s.ID); err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM shift_exception_days WHERE shift_id = $1`, s.ID); err != nil {
		return err
	}

	return r.insertRules(ctx, q, &s)
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string, customerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1 AND customer_id = $2`, id, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
