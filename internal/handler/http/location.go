package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/location"
	"github.com/workpulse-hr/workpulse-backend-go/internal/handler/http/response"
)

type LocationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LocationHandlerImpl struct {
	locationService location.LocationService
}

func NewLocationHandler(locationService location.LocationService) LocationHandler {
	return &LocationHandlerImpl{locationService: locationService}
}

// Create implements LocationHandler.
func (h *LocationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var upsertReq location.UpsertLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("CreateLocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.locationService.Create(r.Context(), customerID, upsertReq)
	if err != nil {
		slog.Error("CreateLocation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location created successfully", created)
}

// List implements LocationHandler.
func (h *LocationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	locations, err := h.locationService.List(r.Context(), customerID)
	if err != nil {
		slog.Error("ListLocations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, locations)
}

// Get implements LocationHandler.
func (h *LocationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	loc, err := h.locationService.Get(r.Context(), customerID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, loc)
}

// Update implements LocationHandler.
func (h *LocationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var upsertReq location.UpsertLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("UpdateLocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.locationService.Update(r.Context(), customerID, chi.URLParam(r, "id"), upsertReq)
	if err != nil {
		slog.Error("UpdateLocation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location updated successfully", updated)
}

// Delete implements LocationHandler.
func (h *LocationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.locationService.Delete(r.Context(), customerID, chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteLocation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Location deleted successfully", nil)
}
