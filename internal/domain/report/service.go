package report

import "context"

// ReportService generates attendance reports over the timesheet engine.
type ReportService interface {
	// GenerateUserReport builds the calendar, daily reconciliation and
	// summary for one user over an inclusive date range.
	GenerateUserReport(ctx context.Context, customerID string, req UserReportRequest) (UserReport, error)

	// GenerateMyReport is the employee-facing variant scoped to the caller.
	GenerateMyReport(ctx context.Context, userID string, startDate, endDate string) (UserReport, error)

	// GenerateTeamReport builds one reconciled entry per day per employee of
	// a customer, optionally filtered by location.
	GenerateTeamReport(ctx context.Context, customerID string, req TeamReportRequest) (TeamReport, error)
}
