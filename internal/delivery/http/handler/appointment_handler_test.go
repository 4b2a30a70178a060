package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubBookingUsecase struct {
	bookErr     error
	transitErr  error
	appointment *dto.AppointmentResponse
}

func (s *stubBookingUsecase) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return s.appointment, nil
}

func (s *stubBookingUsecase) CompleteAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	if s.transitErr != nil {
		return nil, s.transitErr
	}
	return s.appointment, nil
}

func (s *stubBookingUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	if s.transitErr != nil {
		return nil, s.transitErr
	}
	return s.appointment, nil
}

func (s *stubBookingUsecase) RescheduleAppointment(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return s.appointment, nil
}

func (s *stubBookingUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (s *stubBookingUsecase) GetDoctorDay(ctx context.Context, date time.Time) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func bookingBody() string {
	return `{"doctor_id":"` + uuid.NewString() + `","appointment_date":"2025-06-02","appointment_time":"09:00","reason":"annual checkup"}`
}

func TestBookAppointment(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		stub     *stubBookingUsecase
		wantCode int
	}{
		{
			name: "created",
			body: bookingBody(),
			stub: &stubBookingUsecase{appointment: &dto.AppointmentResponse{
				ID:     uuid.New(),
				Status: "BOOKED",
			}},
			wantCode: http.StatusCreated,
		},
		{
			name:     "slot already taken",
			body:     bookingBody(),
			stub:     &stubBookingUsecase{bookErr: usecase.ErrSlotConflict},
			wantCode: http.StatusConflict,
		},
		{
			name:     "no availability declared",
			body:     bookingBody(),
			stub:     &stubBookingUsecase{bookErr: usecase.ErrInvalidSlot},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "bad time format",
			body:     bookingBody(),
			stub:     &stubBookingUsecase{bookErr: usecase.ErrInvalidTimeFormat},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "storage failure",
			body:     bookingBody(),
			stub:     &stubBookingUsecase{bookErr: errors.New("connection reset")},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "malformed body",
			body:     `{`,
			stub:     &stubBookingUsecase{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing reason fails validation",
			body:     `{"doctor_id":"` + uuid.NewString() + `","appointment_date":"2025-06-02","appointment_time":"09:00"}`,
			stub:     &stubBookingUsecase{},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(tt.stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/patient/appointments", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.BookAppointment(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestCompleteAppointment(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		stub     *stubBookingUsecase
		wantCode int
	}{
		{
			name:     "completed",
			id:       uuid.NewString(),
			stub:     &stubBookingUsecase{appointment: &dto.AppointmentResponse{Status: "COMPLETED"}},
			wantCode: http.StatusOK,
		},
		{
			name:     "terminal state rejected",
			id:       uuid.NewString(),
			stub:     &stubBookingUsecase{transitErr: usecase.ErrInvalidTransition},
			wantCode: http.StatusConflict,
		},
		{
			name:     "not the owner",
			id:       uuid.NewString(),
			stub:     &stubBookingUsecase{transitErr: usecase.ErrAppointmentNotOwned},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "not found",
			id:       uuid.NewString(),
			stub:     &stubBookingUsecase{transitErr: usecase.ErrAppointmentNotFound},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "bad id",
			id:       "not-a-uuid",
			stub:     &stubBookingUsecase{},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(tt.stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPatch, "/doctor/appointments/"+tt.id+"/complete", nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()
			h.CompleteAppointment(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestBookAppointmentConflictMessage(t *testing.T) {
	stub := &stubBookingUsecase{bookErr: usecase.ErrSlotConflict}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/patient/appointments", strings.NewReader(bookingBody()))
	rec := httptest.NewRecorder()
	h.BookAppointment(rec, req)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if !strings.Contains(resp.Message, "no longer available") {
		t.Errorf("conflict message should guide the patient to retry, got %q", resp.Message)
	}
}
