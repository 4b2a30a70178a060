package entity

import "testing"

func TestAppointmentStateMachine(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		ok   bool
	}{
		{"booked to completed", AppointmentStatusBooked, AppointmentStatusCompleted, true},
		{"booked to cancelled", AppointmentStatusBooked, AppointmentStatusCancelled, true},
		{"booked to rescheduled", AppointmentStatusBooked, AppointmentStatusRescheduled, true},
		{"rescheduled to completed", AppointmentStatusRescheduled, AppointmentStatusCompleted, true},
		{"rescheduled to cancelled", AppointmentStatusRescheduled, AppointmentStatusCancelled, true},
		{"completed accepts nothing", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled accepts nothing", AppointmentStatusCancelled, AppointmentStatusBooked, false},
		{"cancelled cannot be completed", AppointmentStatusCancelled, AppointmentStatusCompleted, false},
		{"booked cannot go back to booked", AppointmentStatusBooked, AppointmentStatusBooked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Status: tt.from}
			if got := a.CanTransitionTo(tt.to); got != tt.ok {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.ok)
			}
		})
	}
}

func TestAppointmentActivity(t *testing.T) {
	active := []AppointmentStatus{AppointmentStatusBooked, AppointmentStatusRescheduled}
	for _, s := range active {
		a := Appointment{Status: s}
		if !a.IsActive() {
			t.Errorf("%s should be active", s)
		}
		if a.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}

	terminal := []AppointmentStatus{AppointmentStatusCompleted, AppointmentStatusCancelled}
	for _, s := range terminal {
		a := Appointment{Status: s}
		if a.IsActive() {
			t.Errorf("%s should not be active", s)
		}
		if !a.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}

func TestSlotIsDeletable(t *testing.T) {
	tests := []struct {
		name   string
		booked bool
		locked bool
		want   bool
	}{
		{"free slot", false, false, true},
		{"booked slot", true, false, false},
		{"locked slot", false, true, false},
		{"booked and locked", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AvailabilitySlot{IsBooked: tt.booked, IsLocked: tt.locked}
			if got := s.IsDeletable(); got != tt.want {
				t.Errorf("IsDeletable() = %v, want %v", got, tt.want)
			}
		})
	}
}
