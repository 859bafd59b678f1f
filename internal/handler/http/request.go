package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/request"
	"github.com/workpulse-hr/workpulse-backend-go/internal/handler/http/response"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListForCustomer(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// Create implements RequestHandler.
func (h *RequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq request.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("CreateRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted successfully", created)
}

// ListMine implements RequestHandler.
func (h *RequestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.requestService.ListMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListForCustomer implements RequestHandler.
func (h *RequestHandlerImpl) ListForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.requestService.ListForCustomer(r.Context(), customerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Review implements RequestHandler.
func (h *RequestHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	customerID, err := callerCustomerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var statusReq request.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("ReviewRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reviewed, err := h.requestService.Review(r.Context(), customerID, chi.URLParam(r, "id"), statusReq)
	if err != nil {
		slog.Error("ReviewRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request reviewed successfully", reviewed)
}
