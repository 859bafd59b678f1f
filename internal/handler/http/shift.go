package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/workpulse-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var upsertReq shift.UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.Create(r.Context(), customerID, upsertReq)
	if err != nil {
		slog.Error("CreateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", created)
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shifts, err := h.shiftService.List(r.Context(), customerID)
	if err != nil {
		slog.Error("ListShifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	sh, err := h.shiftService.Get(r.Context(), customerID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sh)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var upsertReq shift.UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.shiftService.Update(r.Context(), customerID, chi.URLParam(r, "id"), upsertReq)
	if err != nil {
		slog.Error("UpdateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", updated)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.shiftService.Delete(r.Context(), customerID, chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}
