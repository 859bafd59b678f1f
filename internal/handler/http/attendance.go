package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/workpulse-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var checkReq attendance.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&checkReq); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), userID, checkReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked in", "user_id", userID)
	response.Created(w, "Checked in successfully", record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var checkReq attendance.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&checkReq); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), userID, checkReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked out", "user_id", userID)
	response.SuccessWithMessage(w, "Checked out successfully", record)
}

// ListMine implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	listReq := attendance.ListMyAttendanceRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	records, err := h.attendanceService.ListMine(r.Context(), userID, listReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
