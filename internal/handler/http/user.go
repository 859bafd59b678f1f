package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hr/workpulse-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// CreateEmployee implements UserHandler.
func (h *UserHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq user.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.CreateEmployee(r.Context(), customerID, createReq)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// ListEmployees implements UserHandler.
func (h *UserHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var filter user.UserFilter
	if locationID := r.URL.Query().Get("location_id"); locationID != "" {
		filter.LocationID = &locationID
	}
	if shiftID := r.URL.Query().Get("shift_id"); shiftID != "" {
		filter.ShiftID = &shiftID
	}

	employees, err := h.userService.ListEmployees(r.Context(), customerID, filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// GetEmployee implements UserHandler.
func (h *UserHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employee, err := h.userService.GetEmployee(r.Context(), customerID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee)
}

// UpdateEmployee implements UserHandler.
func (h *UserHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq user.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.userService.UpdateEmployee(r.Context(), customerID, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// GetProfile implements UserHandler.
func (h *UserHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
