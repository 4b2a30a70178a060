package handler

import (
	"context"
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

type stubAvailabilityUsecase struct {
	generateErr  error
	clearErr     error
	listErr      error
	generated    *dto.GenerateSlotsResponse
	cleared      *dto.ClearSlotsResponse
	listedDoctor uuid.UUID
	listedDate   time.Time
}

func (s *stubAvailabilityUsecase) GenerateSlots(ctx context.Context, req *dto.GenerateSlotsRequest) (*dto.GenerateSlotsResponse, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return s.generated, nil
}

func (s *stubAvailabilityUsecase) ClearUnbookedSlots(ctx context.Context, req *dto.ClearSlotsRequest) (*dto.ClearSlotsResponse, error) {
	if s.clearErr != nil {
		return nil, s.clearErr
	}
	return s.cleared, nil
}

func (s *stubAvailabilityUsecase) ListSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) (*dto.SlotListResponse, error) {
	s.listedDoctor = doctorID
	s.listedDate = date
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &dto.SlotListResponse{}, nil
}

func TestGenerateSlots(t *testing.T) {
	weeklyBody := `{"frequency":"WEEKLY","start_date":"2025-06-02","end_date":"2025-06-30","day_of_week":[1,3,5],"start_time":"09:00","end_time":"11:00","slot_duration_minutes":30}`

	tests := []struct {
		name     string
		body     string
		stub     *stubAvailabilityUsecase
		wantCode int
	}{
		{
			name:     "weekly rule accepted",
			body:     weeklyBody,
			stub:     &stubAvailabilityUsecase{generated: &dto.GenerateSlotsResponse{SlotsCreated: 20}},
			wantCode: http.StatusCreated,
		},
		{
			name:     "monthly frequency rejected by validation",
			body:     `{"frequency":"MONTHLY","start_date":"2025-06-01","end_date":"2025-06-30","start_time":"09:00","end_time":"11:00","slot_duration_minutes":30}`,
			stub:     &stubAvailabilityUsecase{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "inverted range",
			body:     weeklyBody,
			stub:     &stubAvailabilityUsecase{generateErr: usecase.ErrInvalidRange},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty daily window",
			body:     weeklyBody,
			stub:     &stubAvailabilityUsecase{generateErr: usecase.ErrEmptyDailyWindow},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "weekly without weekdays",
			body:     weeklyBody,
			stub:     &stubAvailabilityUsecase{generateErr: usecase.ErrNoWeekdaysSelected},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "zero duration fails validation",
			body:     `{"frequency":"DAILY","start_date":"2025-06-01","end_date":"2025-06-30","start_time":"09:00","end_time":"11:00","slot_duration_minutes":0}`,
			stub:     &stubAvailabilityUsecase{},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAvailabilityHandler(tt.stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/doctor/availability", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.GenerateSlots(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestClearSlots(t *testing.T) {
	h := NewAvailabilityHandler(&stubAvailabilityUsecase{cleared: &dto.ClearSlotsResponse{SlotsRemoved: 4}}, validator.NewValidator())

	body := `{"start_date":"2025-06-01","end_date":"2025-06-07"}`
	req := httptest.NewRequest(http.MethodDelete, "/doctor/availability", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ClearSlots(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestListSlots(t *testing.T) {
	doctorID := uuid.New()

	tests := []struct {
		name     string
		id       string
		query    string
		wantCode int
	}{
		{"ok", doctorID.String(), "?date=2025-06-02", http.StatusOK},
		{"missing date", doctorID.String(), "", http.StatusBadRequest},
		{"bad date", doctorID.String(), "?date=02-06-2025", http.StatusBadRequest},
		{"bad doctor id", "nope", "?date=2025-06-02", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAvailabilityUsecase{}
			h := NewAvailabilityHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodGet, "/doctors/"+tt.id+"/slots"+tt.query, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()
			h.ListSlots(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusOK && stub.listedDoctor != doctorID {
				t.Errorf("usecase received doctor %s, want %s", stub.listedDoctor, doctorID)
			}
		})
	}
}
