package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/report"
	"github.com/workpulse-hr/workpulse-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	UserReport(w http.ResponseWriter, r *http.Request)
	MyReport(w http.ResponseWriter, r *http.Request)
	TeamReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// UserReport implements ReportHandler.
func (h *ReportHandlerImpl) UserReport(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reportReq := report.UserReportRequest{
		UserID:    chi.URLParam(r, "id"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.GenerateUserReport(r.Context(), customerID, reportReq)
	if err != nil {
		slog.Error("UserReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyReport implements ReportHandler.
func (h *ReportHandlerImpl) MyReport(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateMyReport(r.Context(), userID,
		r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		slog.Error("MyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TeamReport implements ReportHandler.
func (h *ReportHandlerImpl) TeamReport(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reportReq := report.TeamReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if locationID := r.URL.Query().Get("location_id"); locationID != "" {
		reportReq.LocationID = &locationID
	}

	result, err := h.reportService.GenerateTeamReport(r.Context(), customerID, reportReq)
	if err != nil {
		slog.Error("TeamReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
