package report

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/report"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/request"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/timesheet"
)

type ReportServiceImpl struct {
	user.UserRepository
	shift.ShiftRepository
	attendance.AttendanceRepository
	request.RequestRepository
	now func() time.Time
}

func NewReportService(
	userRepository user.UserRepository,
	shiftRepository shift.ShiftRepository,
	attendanceRepository attendance.AttendanceRepository,
	requestRepository request.RequestRepository,
) report.ReportService {
	return &ReportServiceImpl{
		UserRepository:       userRepository,
		ShiftRepository:      shiftRepository,
		AttendanceRepository: attendanceRepository,
		RequestRepository:    requestRepository,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

// GenerateUserReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateUserReport(ctx context.Context, customerID string, req report.UserReportRequest) (report.UserReport, error) {
	if err := req.Validate(); err != nil {
		return report.UserReport{}, err
	}

	subject, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return report.UserReport{}, err
	}
	if subject.CustomerID == nil || *subject.CustomerID != customerID {
		return report.UserReport{}, user.ErrUserNotFound
	}

	return s.buildUserReport(ctx, subject, customerID, req.StartDate, req.EndDate)
}

// GenerateMyReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateMyReport(ctx context.Context, userID string, startDate, endDate string) (report.UserReport, error) {
	req := report.UserReportRequest{UserID: userID, StartDate: startDate, EndDate: endDate}
	if err := req.Validate(); err != nil {
		return report.UserReport{}, err
	}

	subject, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return report.UserReport{}, err
	}

	ownerID := subject.ID
	if subject.CustomerID != nil {
		ownerID = *subject.CustomerID
	}

	return s.buildUserReport(ctx, subject, ownerID, startDate, endDate)
}

// GenerateTeamReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateTeamReport(ctx context.Context, customerID string, req report.TeamReportRequest) (report.TeamReport, error) {
	if err := req.Validate(); err != nil {
		return report.TeamReport{}, err
	}

	employees, err := s.UserRepository.ListEmployees(ctx, customerID, user.UserFilter{LocationID: req.LocationID})
	if err != nil {
		return report.TeamReport{}, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) == 0 {
		return report.TeamReport{}, report.ErrNoUsersFound
	}

	start, _ := time.Parse(timesheet.DateFormat, req.StartDate)
	end, _ := time.Parse(timesheet.DateFormat, req.EndDate)

	userIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		userIDs = append(userIDs, emp.ID)
	}

	attendances, err := s.AttendanceRepository.ListByUsersBetween(ctx, userIDs, start, end)
	if err != nil {
		return report.TeamReport{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	attendanceByUser := make(map[string][]attendance.Attendance)
	for _, att := range attendances {
		attendanceByUser[att.UserID] = append(attendanceByUser[att.UserID], att)
	}

	requests, err := s.RequestRepository.ListByCreatorsOverlapping(ctx, userIDs, start, end)
	if err != nil {
		return report.TeamReport{}, fmt.Errorf("failed to list requests: %w", err)
	}
	requestsByUser := make(map[string][]request.Request)
	for _, r := range requests {
		requestsByUser[r.CreatorID] = append(requestsByUser[r.CreatorID], r)
	}

	// Shift definitions are shared across users; fetch each once.
	shiftCache := make(map[string]timesheet.ShiftDefinition)

	recordsByUser := make(map[string]map[string]timesheet.DailyRecord)
	for _, emp := range employees {
		if emp.ShiftID == nil {
			continue
		}

		def, ok := shiftCache[*emp.ShiftID]
		if !ok {
			sh, err := s.ShiftRepository.GetByID(ctx, *emp.ShiftID, customerID)
			if err != nil {
				return report.TeamReport{}, err
			}
			def, err = toShiftDefinition(sh)
			if err != nil {
				return report.TeamReport{}, err
			}
			shiftCache[*emp.ShiftID] = def
		}

		calendar := timesheet.BuildCalendar(def, start, end)
		intervals := timesheet.MapRequests(toEngineRequests(requestsByUser[emp.ID]))
		daily := timesheet.Reconcile(calendar, toEngineAttendance(attendanceByUser[emp.ID]), intervals)

		byDate := make(map[string]timesheet.DailyRecord, len(daily))
		for _, record := range daily {
			byDate[record.Date] = record
		}
		recordsByUser[emp.ID] = byDate
	}
	if len(recordsByUser) == 0 {
		return report.TeamReport{}, report.ErrNoShiftAssigned
	}

	teamReport := report.TeamReport{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: s.now().Format(time.RFC3339),
	}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		day := report.TeamReportDay{Date: date.Format(timesheet.DateFormat)}
		for _, emp := range employees {
			byDate, ok := recordsByUser[emp.ID]
			if !ok {
				continue
			}
			record, ok := byDate[day.Date]
			if !ok {
				continue
			}
			day.Users = append(day.Users, report.TeamReportEntry{
				UserID:   emp.ID,
				UserName: emp.Name,
				Record:   record,
			})
		}
		teamReport.Days = append(teamReport.Days, day)
	}

	return teamReport, nil
}

func (s *ReportServiceImpl) buildUserReport(ctx context.Context, subject user.User, ownerID string, startDate, endDate string) (report.UserReport, error) {
	if subject.ShiftID == nil {
		return report.UserReport{}, report.ErrNoShiftAssigned
	}

	sh, err := s.ShiftRepository.GetByID(ctx, *subject.ShiftID, ownerID)
	if err != nil {
		return report.UserReport{}, err
	}

	def, err := toShiftDefinition(sh)
	if err != nil {
		return report.UserReport{}, err
	}

	start, _ := time.Parse(timesheet.DateFormat, startDate)
	end, _ := time.Parse(timesheet.DateFormat, endDate)

	attendances, err := s.AttendanceRepository.ListByUserBetween(ctx, subject.ID, start, end)
	if err != nil {
		return report.UserReport{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	requests, err := s.RequestRepository.ListByCreatorOverlapping(ctx, subject.ID, start, end)
	if err != nil {
		return report.UserReport{}, fmt.Errorf("failed to list requests: %w", err)
	}

	calendar := timesheet.BuildCalendar(def, start, end)
	intervals := timesheet.MapRequests(toEngineRequests(requests))
	daily := timesheet.Reconcile(calendar, toEngineAttendance(attendances), intervals)
	summary := timesheet.Summarize(daily)

	return report.UserReport{
		UserID:      subject.ID,
		UserName:    subject.Name,
		StartDate:   startDate,
		EndDate:     endDate,
		GeneratedAt: s.now().Format(time.RFC3339),
		Calendar:    toCalendarResponse(calendar),
		Daily:       daily,
		Summary:     summary,
	}, nil
}

// toShiftDefinition converts a stored shift into the engine's schedule form.
func toShiftDefinition(sh shift.Shift) (timesheet.ShiftDefinition, error) {
	var def timesheet.ShiftDefinition

	for _, day := range sh.Days {
		windows, err := toWindows(day.Times)
		if err != nil {
			return timesheet.ShiftDefinition{}, fmt.Errorf("shift %s day %d: %w", sh.ID, day.Day, err)
		}
		def.WeeklyRules = append(def.WeeklyRules, timesheet.WeeklyRule{
			Weekday:  day.Day,
			IsOffDay: day.IsOffDay,
			Windows:  windows,
		})
	}

	for _, exc := range sh.ExceptionDays {
		windows, err := toWindows(exc.Times)
		if err != nil {
			return timesheet.ShiftDefinition{}, fmt.Errorf("shift %s exception %s: %w", sh.ID, exc.Date.Format(timesheet.DateFormat), err)
		}
		def.ExceptionDays = append(def.ExceptionDays, timesheet.ExceptionDay{
			Date:    exc.Date,
			Windows: windows,
		})
	}

	return def, nil
}

func toWindows(times shift.TimeWindows) ([]timesheet.TimeWindow, error) {
	windows := make([]timesheet.TimeWindow, 0, len(times))
	for _, w := range times {
		start, err := timesheet.ParseClock(w.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := timesheet.ParseClock(w.EndTime)
		if err != nil {
			return nil, err
		}
		windows = append(windows, timesheet.TimeWindow{Start: start, End: end})
	}
	return windows, nil
}

func toEngineAttendance(records []attendance.Attendance) []timesheet.DayAttendance {
	days := make([]timesheet.DayAttendance, 0, len(records))
	for _, record := range records {
		sessions := make([]timesheet.Session, 0, len(record.Sessions))
		for _, sess := range record.Sessions {
			sessions = append(sessions, timesheet.Session{
				CheckIn:  sess.CheckIn,
				CheckOut: sess.CheckOut,
			})
		}
		days = append(days, timesheet.DayAttendance{
			Date:     record.Date,
			Sessions: sessions,
		})
	}
	return days
}

func toEngineRequests(requests []request.Request) []timesheet.Request {
	engine := make([]timesheet.Request, 0, len(requests))
	for _, r := range requests {
		engine = append(engine, timesheet.Request{
			Kind:   timesheet.RequestKind(r.RequestType),
			Status: timesheet.RequestStatus(r.Status),
			Start:  r.StartDate,
			End:    r.EndDate,
		})
	}
	return engine
}

func toCalendarResponse(calendar []timesheet.CalendarDay) []report.CalendarDayResponse {
	days := make([]report.CalendarDayResponse, 0, len(calendar))
	for _, day := range calendar {
		windows := make([]report.TimeWindowResponse, 0, len(day.Windows))
		for _, w := range day.Windows {
			windows = append(windows, report.TimeWindowResponse{
				StartTime: w.Start.String(),
				EndTime:   w.End.String(),
			})
		}
		days = append(days, report.CalendarDayResponse{
			Date:           day.Date.Format(timesheet.DateFormat),
			IsOffDay:       day.IsOffDay,
			IsExceptionDay: day.IsException,
			Time:           windows,
		})
	}
	return days
}
