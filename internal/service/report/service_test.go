package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/report"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/request"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/timesheet"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListEmployees(ctx context.Context, customerID string, filter user.UserFilter) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.Role != user.RoleEmployee || u.CustomerID == nil || *u.CustomerID != customerID {
			continue
		}
		if filter.LocationID != nil && (u.LocationID == nil || *u.LocationID != *filter.LocationID) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string, customerID string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok || s.CustomerID != customerID {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) List(ctx context.Context, customerID string) ([]shift.Shift, error) {
	return nil, nil
}
func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error          { return nil }
func (f *fakeShiftRepo) Delete(ctx context.Context, id, customerID string) error  { return nil }

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.UserID == userID && !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByUsersBetween(ctx context.Context, userIDs []string, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, id := range userIDs {
		records, _ := f.ListByUserBetween(ctx, id, start, end)
		out = append(out, records...)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

type fakeRequestRepo struct {
	requests []request.Request
}

func (f *fakeRequestRepo) Create(ctx context.Context, req request.Request) (request.Request, error) {
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id, customerID string) (request.Request, error) {
	return request.Request{}, request.ErrRequestNotFound
}

func (f *fakeRequestRepo) ListByCreator(ctx context.Context, creatorID string) ([]request.Request, error) {
	return nil, nil
}

func (f *fakeRequestRepo) ListByCustomer(ctx context.Context, customerID string) ([]request.Request, error) {
	return nil, nil
}

func (f *fakeRequestRepo) ListByCreatorOverlapping(ctx context.Context, creatorID string, start, end time.Time) ([]request.Request, error) {
	var out []request.Request
	for _, r := range f.requests {
		if r.CreatorID == creatorID && !r.StartDate.After(end) && !r.EndDate.Before(start) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByCreatorsOverlapping(ctx context.Context, creatorIDs []string, start, end time.Time) ([]request.Request, error) {
	var out []request.Request
	for _, id := range creatorIDs {
		requests, _ := f.ListByCreatorOverlapping(ctx, id, start, end)
		out = append(out, requests...)
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status request.Status, reviewedAt time.Time) error {
	return nil
}

func strPtr(s string) *string { return &s }

// weekdayShift covers Monday through Friday 09:00-17:00 with weekends off.
func weekdayShift(id, customerID string) shift.Shift {
	s := shift.Shift{
		ID:         id,
		CustomerID: customerID,
		Name:       "Office Hours",
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for day := 1; day <= 5; day++ {
		s.Days = append(s.Days, shift.ShiftDay{
			Day: day,
			Times: shift.TimeWindows{
				{StartTime: "09:00", EndTime: "17:00"},
			},
		})
	}
	for day := 6; day <= 7; day++ {
		s.Days = append(s.Days, shift.ShiftDay{
			Day:      day,
			IsOffDay: true,
			Times: shift.TimeWindows{
				{StartTime: "09:00", EndTime: "17:00"},
			},
		})
	}
	return s
}

func newTestService(users map[string]user.User, shifts map[string]shift.Shift, records []attendance.Attendance, requests []request.Request) *ReportServiceImpl {
	svc := NewReportService(
		&fakeUserRepo{users: users},
		&fakeShiftRepo{shifts: shifts},
		&fakeAttendanceRepo{records: records},
		&fakeRequestRepo{requests: requests},
	).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerateUserReport(t *testing.T) {
	customerID := "cust-1"
	users := map[string]user.User{
		"emp-1": {
			ID:         "emp-1",
			CustomerID: &customerID,
			Name:       "Dana",
			Email:      "dana@example.com",
			Role:       user.RoleEmployee,
			ShiftID:    strPtr("shift-1"),
		},
	}
	shifts := map[string]shift.Shift{
		"shift-1": weekdayShift("shift-1", customerID),
	}

	// Monday 2024-07-01: on time, full day.
	out := time.Date(2024, 7, 1, 17, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		{
			ID:     "att-1",
			UserID: "emp-1",
			Date:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			Sessions: attendance.Sessions{
				{CheckIn: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC), CheckOut: &out},
			},
		},
	}

	// Accepted leave covering Tuesday's whole window.
	requests := []request.Request{
		{
			ID:          "req-1",
			CreatorID:   "emp-1",
			CustomerID:  customerID,
			RequestType: request.TypeLeave,
			Status:      request.StatusAccepted,
			StartDate:   time.Date(2024, 7, 2, 9, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 7, 2, 17, 0, 0, 0, time.UTC),
		},
	}

	svc := newTestService(users, shifts, records, requests)

	result, err := svc.GenerateUserReport(context.Background(), customerID, report.UserReportRequest{
		UserID:    "emp-1",
		StartDate: "2024-07-01",
		EndDate:   "2024-07-07",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", result.UserID)
	assert.Equal(t, "Dana", result.UserName)
	require.Len(t, result.Calendar, 7)
	require.Len(t, result.Daily, 7)

	assert.Equal(t, timesheet.StatusFullPresent, result.Daily[0].Status)
	assert.Equal(t, timesheet.StatusLeave, result.Daily[1].Status)
	assert.Equal(t, timesheet.StatusAbsent, result.Daily[2].Status)
	assert.Equal(t, timesheet.StatusShiftOffDay, result.Daily[5].Status)
	assert.Equal(t, timesheet.StatusShiftOffDay, result.Daily[6].Status)

	assert.Equal(t, 7, result.Summary.TotalDays)
	assert.Equal(t, 5, result.Summary.WorkingDays)
	assert.Equal(t, 2, result.Summary.OffDays)
	assert.Equal(t, 1, result.Summary.PresentDays)
	assert.Equal(t, 1, result.Summary.LeaveDays)
	assert.Equal(t, "08:00", result.Summary.TotalActualTime)
	assert.Equal(t, "08:00", result.Summary.TotalLeaveTime)
}

func TestGenerateUserReportChecksOwnership(t *testing.T) {
	otherCustomer := "cust-2"
	users := map[string]user.User{
		"emp-1": {
			ID:         "emp-1",
			CustomerID: &otherCustomer,
			Role:       user.RoleEmployee,
			ShiftID:    strPtr("shift-1"),
		},
	}

	svc := newTestService(users, nil, nil, nil)

	_, err := svc.GenerateUserReport(context.Background(), "cust-1", report.UserReportRequest{
		UserID:    "emp-1",
		StartDate: "2024-07-01",
		EndDate:   "2024-07-07",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGenerateUserReportWithoutShift(t *testing.T) {
	customerID := "cust-1"
	users := map[string]user.User{
		"emp-1": {
			ID:         "emp-1",
			CustomerID: &customerID,
			Role:       user.RoleEmployee,
		},
	}

	svc := newTestService(users, nil, nil, nil)

	_, err := svc.GenerateUserReport(context.Background(), customerID, report.UserReportRequest{
		UserID:    "emp-1",
		StartDate: "2024-07-01",
		EndDate:   "2024-07-07",
	})
	assert.ErrorIs(t, err, report.ErrNoShiftAssigned)
}

func TestGenerateMyReport(t *testing.T) {
	customerID := "cust-1"
	users := map[string]user.User{
		"emp-1": {
			ID:         "emp-1",
			CustomerID: &customerID,
			Name:       "Dana",
			Role:       user.RoleEmployee,
			ShiftID:    strPtr("shift-1"),
		},
	}
	shifts := map[string]shift.Shift{
		"shift-1": weekdayShift("shift-1", customerID),
	}

	svc := newTestService(users, shifts, nil, nil)

	result, err := svc.GenerateMyReport(context.Background(), "emp-1", "2024-07-01", "2024-07-01")
	require.NoError(t, err)
	require.Len(t, result.Daily, 1)
	assert.Equal(t, timesheet.StatusAbsent, result.Daily[0].Status)
}

func TestGenerateTeamReport(t *testing.T) {
	customerID := "cust-1"
	users := map[string]user.User{
		"emp-1": {
			ID:         "emp-1",
			CustomerID: &customerID,
			Name:       "Dana",
			Role:       user.RoleEmployee,
			ShiftID:    strPtr("shift-1"),
		},
		"emp-2": {
			ID:         "emp-2",
			CustomerID: &customerID,
			Name:       "Eli",
			Role:       user.RoleEmployee,
			ShiftID:    strPtr("shift-1"),
		},
	}
	shifts := map[string]shift.Shift{
		"shift-1": weekdayShift("shift-1", customerID),
	}

	out := time.Date(2024, 7, 1, 17, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		{
			UserID: "emp-1",
			Date:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			Sessions: attendance.Sessions{
				{CheckIn: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC), CheckOut: &out},
			},
		},
	}

	svc := newTestService(users, shifts, records, nil)

	result, err := svc.GenerateTeamReport(context.Background(), customerID, report.TeamReportRequest{
		StartDate: "2024-07-01",
		EndDate:   "2024-07-02",
	})
	require.NoError(t, err)
	require.Len(t, result.Days, 2)
	require.Len(t, result.Days[0].Users, 2)

	byName := make(map[string]timesheet.DailyRecord)
	for _, entry := range result.Days[0].Users {
		byName[entry.UserName] = entry.Record
	}
	assert.Equal(t, timesheet.StatusFullPresent, byName["Dana"].Status)
	assert.Equal(t, timesheet.StatusAbsent, byName["Eli"].Status)
}

func TestGenerateTeamReportNoEmployees(t *testing.T) {
	svc := newTestService(map[string]user.User{}, nil, nil, nil)

	_, err := svc.GenerateTeamReport(context.Background(), "cust-1", report.TeamReportRequest{
		StartDate: "2024-07-01",
		EndDate:   "2024-07-02",
	})
	assert.ErrorIs(t, err, report.ErrNoUsersFound)
}
