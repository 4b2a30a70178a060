package entity

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandWeekly(t *testing.T) {
	// Mon 2025-06-02 through Sun 2025-06-08, weekdays only, two hours in
	// 30-minute steps: 5 days x 4 slots.
	rule := RecurrenceRule{
		Frequency:   FrequencyWeekly,
		StartDate:   date(2025, time.June, 2),
		EndDate:     date(2025, time.June, 8),
		Weekdays:    []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		WindowStart: "09:00",
		WindowEnd:   "11:00",
		SlotMinutes: 30,
	}

	windows := rule.Expand()
	if len(windows) != 20 {
		t.Fatalf("expected 20 windows, got %d", len(windows))
	}

	for _, w := range windows {
		if w.Date.Weekday() == time.Saturday || w.Date.Weekday() == time.Sunday {
			t.Errorf("weekend date %s should not appear", w.Date.Format("2006-01-02"))
		}
	}

	// First day's slots are contiguous and ordered.
	want := []SlotWindow{
		{Date: date(2025, time.June, 2), StartTime: "09:00", EndTime: "09:30"},
		{Date: date(2025, time.June, 2), StartTime: "09:30", EndTime: "10:00"},
		{Date: date(2025, time.June, 2), StartTime: "10:00", EndTime: "10:30"},
		{Date: date(2025, time.June, 2), StartTime: "10:30", EndTime: "11:00"},
	}
	for i, expected := range want {
		got := windows[i]
		if !got.Date.Equal(expected.Date) || got.StartTime != expected.StartTime || got.EndTime != expected.EndTime {
			t.Errorf("window %d: got %s %s-%s, want %s %s-%s",
				i, got.Date.Format("2006-01-02"), got.StartTime, got.EndTime,
				expected.Date.Format("2006-01-02"), expected.StartTime, expected.EndTime)
		}
	}
}

func TestExpandDaily(t *testing.T) {
	rule := RecurrenceRule{
		Frequency:   FrequencyDaily,
		StartDate:   date(2025, time.June, 1),
		EndDate:     date(2025, time.June, 3),
		WindowStart: "08:00",
		WindowEnd:   "09:00",
		SlotMinutes: 20,
	}

	windows := rule.Expand()
	if len(windows) != 9 {
		t.Fatalf("expected 9 windows (3 days x 3 slots), got %d", len(windows))
	}
}

func TestExpandFixed(t *testing.T) {
	day := date(2025, time.July, 15)
	rule := RecurrenceRule{
		Frequency:   FrequencyFixed,
		StartDate:   day,
		EndDate:     day,
		WindowStart: "14:00",
		WindowEnd:   "15:30",
		SlotMinutes: 45,
	}

	windows := rule.Expand()
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	for _, w := range windows {
		if !w.Date.Equal(day) {
			t.Errorf("fixed rule produced date %s", w.Date.Format("2006-01-02"))
		}
	}
}

func TestExpandTable(t *testing.T) {
	tests := []struct {
		name string
		rule RecurrenceRule
		want int
	}{
		{
			name: "window smaller than slot duration yields nothing",
			rule: RecurrenceRule{
				Frequency:   FrequencyDaily,
				StartDate:   date(2025, time.June, 1),
				EndDate:     date(2025, time.June, 1),
				WindowStart: "09:00",
				WindowEnd:   "09:20",
				SlotMinutes: 30,
			},
			want: 0,
		},
		{
			name: "partial trailing slot is dropped",
			rule: RecurrenceRule{
				Frequency:   FrequencyDaily,
				StartDate:   date(2025, time.June, 1),
				EndDate:     date(2025, time.June, 1),
				WindowStart: "09:00",
				WindowEnd:   "10:15",
				SlotMinutes: 30,
			},
			want: 2,
		},
		{
			name: "weekly with no matching weekday in range",
			rule: RecurrenceRule{
				Frequency:   FrequencyWeekly,
				StartDate:   date(2025, time.June, 2), // Monday
				EndDate:     date(2025, time.June, 6), // Friday
				Weekdays:    []time.Weekday{time.Sunday},
				WindowStart: "09:00",
				WindowEnd:   "10:00",
				SlotMinutes: 30,
			},
			want: 0,
		},
		{
			name: "single weekday across two weeks",
			rule: RecurrenceRule{
				Frequency:   FrequencyWeekly,
				StartDate:   date(2025, time.June, 2),
				EndDate:     date(2025, time.June, 15),
				Weekdays:    []time.Weekday{time.Wednesday},
				WindowStart: "09:00",
				WindowEnd:   "10:00",
				SlotMinutes: 60,
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.rule.Expand()); got != tt.want {
				t.Errorf("expected %d windows, got %d", tt.want, got)
			}
		})
	}
}
