package converter

import (
	"testing"
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
)

func TestSlotToResponse(t *testing.T) {
	if got := SlotToResponse(nil); got != nil {
		t.Fatalf("nil slot should convert to nil, got %+v", got)
	}

	slot := &entity.AvailabilitySlot{
		ID:        42,
		DoctorID:  uuid.New(),
		SlotDate:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "09:30",
		EndTime:   "10:00",
		IsBooked:  true,
	}

	resp := SlotToResponse(slot)
	if resp.ID != 42 {
		t.Errorf("ID = %d, want 42", resp.ID)
	}
	if resp.SlotDate != "2025-06-02" {
		t.Errorf("SlotDate = %q, want 2025-06-02", resp.SlotDate)
	}
	if resp.StartTime != "09:30" || resp.EndTime != "10:00" {
		t.Errorf("times = %q..%q", resp.StartTime, resp.EndTime)
	}
	if !resp.IsBooked {
		t.Error("expected IsBooked to carry over")
	}
}

func TestSlotsToResponses(t *testing.T) {
	doctorID := uuid.New()
	slots := []entity.AvailabilitySlot{
		{ID: 1, DoctorID: doctorID, SlotDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "09:30"},
		{ID: 2, DoctorID: doctorID, SlotDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), StartTime: "09:30", EndTime: "10:00"},
	}

	responses := SlotsToResponses(slots)
	if len(responses) != 2 {
		t.Fatalf("len = %d, want 2", len(responses))
	}
	if responses[0].StartTime != "09:00" || responses[1].StartTime != "09:30" {
		t.Errorf("order not preserved: %q, %q", responses[0].StartTime, responses[1].StartTime)
	}

	if got := SlotsToResponses(nil); len(got) != 0 {
		t.Errorf("nil input should yield empty slice, got %d entries", len(got))
	}
}

func TestAppointmentToResponse(t *testing.T) {
	if got := AppointmentToResponse(nil); got != nil {
		t.Fatalf("nil appointment should convert to nil, got %+v", got)
	}

	slotID := int64(7)
	appointment := &entity.Appointment{
		ID:                 uuid.New(),
		PatientID:          uuid.New(),
		DoctorID:           uuid.New(),
		AvailabilitySlotID: &slotID,
		AppointmentDate:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		AppointmentTime:    "09:30",
		Reason:             "follow-up",
		Status:             entity.AppointmentStatusBooked,
	}

	resp := AppointmentToResponse(appointment)
	if resp.AppointmentDate != "2025-06-02" {
		t.Errorf("AppointmentDate = %q, want 2025-06-02", resp.AppointmentDate)
	}
	if resp.Status != "BOOKED" {
		t.Errorf("Status = %q, want BOOKED", resp.Status)
	}
	if resp.AvailabilitySlotID == nil || *resp.AvailabilitySlotID != 7 {
		t.Errorf("AvailabilitySlotID = %v, want 7", resp.AvailabilitySlotID)
	}
	if resp.Doctor != nil {
		t.Error("doctor should be omitted when not preloaded")
	}
}
