package request

import (
	"time"

	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	RequestType string `json:"requestType"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Note        string `json:"note"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.RequestType, RequestTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "requestType",
			Message: "requestType must be 'leave' or 'overtime'",
		})
	}

	startDate, startOK := validator.IsValidDateTime(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be an ISO8601 timestamp",
		})
	}

	endDate, endOK := validator.IsValidDateTime(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be an ISO8601 timestamp",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusAccepted) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'accepted' or 'rejected'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID          string  `json:"id"`
	RequestType string  `json:"requestType"`
	Status      string  `json:"status"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Note        string  `json:"note,omitempty"`
	CreatorName *string `json:"creatorName,omitempty"`
	ReviewedAt  *string `json:"reviewedAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

func ToResponse(req Request) RequestResponse {
	resp := RequestResponse{
		ID:          req.ID,
		RequestType: string(req.RequestType),
		Status:      string(req.Status),
		StartDate:   req.StartDate.UTC().Format(time.RFC3339),
		EndDate:     req.EndDate.UTC().Format(time.RFC3339),
		Note:        req.Note,
		CreatorName: req.CreatorName,
		CreatedAt:   req.CreatedAt.UTC().Format(time.RFC3339),
	}
	if req.ReviewedAt != nil {
		reviewed := req.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &reviewed
	}
	return resp
}
