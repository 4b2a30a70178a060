package usecase

import (
	"testing"
	"time"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
)

func TestBuildRecurrenceRule(t *testing.T) {
	doctorID := uuid.New()

	tests := []struct {
		name    string
		req     dto.GenerateSlotsRequest
		wantErr error
	}{
		{
			name: "valid fixed rule",
			req: dto.GenerateSlotsRequest{
				Frequency: "FIXED", Date: "2025-06-02",
				StartTime: "09:00", EndTime: "11:00", SlotDurationMinutes: 30,
			},
		},
		{
			name: "valid daily rule",
			req: dto.GenerateSlotsRequest{
				Frequency: "DAILY", StartDate: "2025-06-01", EndDate: "2025-06-30",
				StartTime: "09:00", EndTime: "17:00", SlotDurationMinutes: 60,
			},
		},
		{
			name: "valid weekly rule",
			req: dto.GenerateSlotsRequest{
				Frequency: "WEEKLY", StartDate: "2025-06-01", EndDate: "2025-06-30",
				DaysOfWeek: []int{1, 3}, StartTime: "09:00", EndTime: "11:00", SlotDurationMinutes: 30,
			},
		},
		{
			name: "monthly is refused",
			req: dto.GenerateSlotsRequest{
				Frequency: "MONTHLY", StartDate: "2025-06-01", EndDate: "2025-06-30",
				StartTime: "09:00", EndTime: "11:00", SlotDurationMinutes: 30,
			},
			wantErr: ErrUnsupportedMonthly,
		},
		{
			name: "unknown frequency",
			req: dto.GenerateSlotsRequest{
				Frequency: "HOURLY", StartDate: "2025-06-01", EndDate: "2025-06-30",
				StartTime: "09:00", EndTime: "11:00", SlotDurationMinutes: 30,
			},
			wantErr: ErrUnknownFrequency,
		},
		{
			name: "inverted date range",
			req: dto.GenerateSlotsRequest{
				Frequency: "DAILY", StartDate: "2025-06-30", EndDate: "2025-06-01",
				StartTime: "09:00", EndTime: "11:00", SlotDurationMinutes: 30,
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "start time equals end time",
			req: dto.GenerateSlotsRequest{
				Frequency: "DAILY", StartDate: "2025-06-01", EndDate: "2025-06-30",
				StartTime: "09:00", EndTime: "09:00", SlotDurationMinutes: 30,
			},
			wantErr: ErrEmptyDailyWindow,
		},
		{
			name: "start time after end time",
			req: dto.GenerateSlotsRequest{
				Frequency: "DAILY", StartDate: "2025-06-01", EndDate: "2025-06-30",
				StartTime: "17:00", EndTime: "09:00", SlotDurationMinutes: 30,
			},
			wantErr: ErrEmptyDailyWindow,
		},
		{
			name: "weekly without weekdays",
			req: dto.GenerateSlotsRequest{
				Frequency: "WEEKLY", StartDate: "2025-06-01", EndDate: "2025-06-30",
				StartTime: "09:00", EndTime: "11:00", SlotDurationMinutes: 30,
			},
			wantErr: ErrNoWeekdaysSelected,
		},
		{
			name: "zero slot duration",
			req: dto.GenerateSlotsRequest{
				Frequency: "DAILY", StartDate: "2025-06-01", EndDate: "2025-06-30",
				StartTime: "09:00", EndTime: "11:00", SlotDurationMinutes: 0,
			},
			wantErr: ErrInvalidSlotDuration,
		},
		{
			name: "malformed date",
			req: dto.GenerateSlotsRequest{
				Frequency: "FIXED", Date: "02/06/2025",
				StartTime: "09:00", EndTime: "11:00", SlotDurationMinutes: 30,
			},
			wantErr: ErrInvalidDateFormat,
		},
		{
			name: "malformed time",
			req: dto.GenerateSlotsRequest{
				Frequency: "FIXED", Date: "2025-06-02",
				StartTime: "9am", EndTime: "11:00", SlotDurationMinutes: 30,
			},
			wantErr: ErrInvalidTimeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := buildRecurrenceRule(doctorID, &tt.req)
			if err != tt.wantErr {
				t.Fatalf("buildRecurrenceRule() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && rule == nil {
				t.Fatal("expected a rule")
			}
		})
	}
}

func TestBuildRecurrenceRuleFixedCollapsesRange(t *testing.T) {
	req := dto.GenerateSlotsRequest{
		Frequency: "FIXED", Date: "2025-06-02",
		StartTime: "09:00", EndTime: "10:00", SlotDurationMinutes: 30,
	}

	rule, err := buildRecurrenceRule(uuid.New(), &req)
	if err != nil {
		t.Fatalf("buildRecurrenceRule: %v", err)
	}

	day := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	if !rule.StartDate.Equal(day) || !rule.EndDate.Equal(day) {
		t.Errorf("fixed rule should pin both dates to %s, got %s..%s",
			day.Format("2006-01-02"), rule.StartDate.Format("2006-01-02"), rule.EndDate.Format("2006-01-02"))
	}
	if rule.Frequency != entity.FrequencyFixed {
		t.Errorf("frequency = %s", rule.Frequency)
	}
}
