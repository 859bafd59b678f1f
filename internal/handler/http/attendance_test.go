package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
)

type fakeAttendanceService struct {
	checkInResponse attendance.AttendanceResponse
	checkInErr      error
	checkOutErr     error
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, userID string, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if f.checkInErr != nil {
		return attendance.AttendanceResponse{}, f.checkInErr
	}
	return f.checkInResponse, nil
}

func (f *fakeAttendanceService) CheckOut(ctx context.Context, userID string, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if f.checkOutErr != nil {
		return attendance.AttendanceResponse{}, f.checkOutErr
	}
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) ListMine(ctx context.Context, userID string, req attendance.ListMyAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func authenticatedRequest(t *testing.T, method, target string, body []byte, role user.Role) *http.Request {
	t.Helper()

	claims := map[string]interface{}{
		"user_id": "emp-1",
		"role":    string(role),
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, _, err := testTokenAuth.Encode(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req = req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
	return req
}

func TestAttendanceHandlerCheckIn(t *testing.T) {
	svc := &fakeAttendanceService{
		checkInResponse: attendance.AttendanceResponse{
			ID:   "att-1",
			Date: "2024-07-01",
			Sessions: []attendance.SessionResponse{
				{CheckIn: "2024-07-01T09:00:00Z"},
			},
		},
	}
	handler := NewAttendanceHandler(svc)

	body, _ := json.Marshal(attendance.CheckRequest{Latitude: -6.2, Longitude: 106.8})
	req := authenticatedRequest(t, http.MethodPost, "/api/v1/attendances/check-in", body, user.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool                          `json:"success"`
		Data    attendance.AttendanceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "att-1", envelope.Data.ID)
}

func TestAttendanceHandlerCheckInOutsideRadius(t *testing.T) {
	svc := &fakeAttendanceService{checkInErr: attendance.ErrOutsideAllowedRadius}
	handler := NewAttendanceHandler(svc)

	body, _ := json.Marshal(attendance.CheckRequest{Latitude: 0, Longitude: 0})
	req := authenticatedRequest(t, http.MethodPost, "/api/v1/attendances/check-in", body, user.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAttendanceHandlerCheckOutWithoutSession(t *testing.T) {
	svc := &fakeAttendanceService{checkOutErr: attendance.ErrNotCheckedIn}
	handler := NewAttendanceHandler(svc)

	body, _ := json.Marshal(attendance.CheckRequest{Latitude: -6.2, Longitude: 106.8})
	req := authenticatedRequest(t, http.MethodPost, "/api/v1/attendances/check-out", body, user.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.CheckOut(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceHandlerRejectsMalformedBody(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := authenticatedRequest(t, http.MethodPost, "/api/v1/attendances/check-in", []byte("{not json"), user.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandlerRequiresIdentity(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances/check-in", bytes.NewReader(nil))
	rec := httptest.NewRecorder()

	handler.CheckIn(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
