package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Frequency selects how a recurrence rule qualifies calendar dates.
type Frequency string

const (
	// FrequencyFixed emits slots for a single fixed date.
	FrequencyFixed Frequency = "FIXED"
	// FrequencyDaily emits slots for every date in the range.
	FrequencyDaily Frequency = "DAILY"
	// FrequencyWeekly emits slots for dates whose weekday is in the set.
	FrequencyWeekly Frequency = "WEEKLY"
)

// RecurrenceRule is the transient input that drives slot generation. It is
// never persisted; only the slots it expands into are.
type RecurrenceRule struct {
	DoctorID    uuid.UUID
	Frequency   Frequency
	StartDate   time.Time      // inclusive
	EndDate     time.Time      // inclusive
	Weekdays    []time.Weekday // WEEKLY only, 0=Sunday..6=Saturday
	WindowStart string         // HH:MM
	WindowEnd   string         // HH:MM
	SlotMinutes int
}

// SlotWindow is one expanded slot position before persistence.
type SlotWindow struct {
	Date      time.Time
	StartTime string
	EndTime   string
}

// Expand slices every qualifying date's [WindowStart, WindowEnd) interval into
// consecutive SlotMinutes-sized windows starting at WindowStart. A window is
// emitted only if it ends at or before WindowEnd; there is no truncated
// trailing slot. Expand assumes the rule already passed validation and returns
// windows in date order, then start-time order. An empty result is valid: it
// means no date qualified or the window is shorter than one slot.
func (r *RecurrenceRule) Expand() []SlotWindow {
	startMin := minutesOfDay(r.WindowStart)
	endMin := minutesOfDay(r.WindowEnd)

	var windows []SlotWindow
	for d := r.StartDate; !d.After(r.EndDate); d = d.AddDate(0, 0, 1) {
		if !r.appliesTo(d) {
			continue
		}
		for m := startMin; m+r.SlotMinutes <= endMin; m += r.SlotMinutes {
			windows = append(windows, SlotWindow{
				Date:      d,
				StartTime: formatMinutes(m),
				EndTime:   formatMinutes(m + r.SlotMinutes),
			})
		}
	}
	return windows
}

func (r *RecurrenceRule) appliesTo(d time.Time) bool {
	switch r.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyFixed:
		// Fixed rules carry StartDate == EndDate == the target date, so every
		// date reached by the range loop qualifies.
		return true
	case FrequencyWeekly:
		for _, wd := range r.Weekdays {
			if d.Weekday() == wd {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// minutesOfDay converts an HH:MM string into minutes since midnight.
// Malformed input yields 0; callers validate formats before expansion.
func minutesOfDay(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
