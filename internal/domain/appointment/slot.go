package appointment

import (
	"time"

	"github.com/itabaza/hms-api/internal/httperr"
)

// ===============================
// Slot Table
// ===============================

// A slot is a named clinic time bucket. Requested clock times are bucketed
// into the slot whose range contains them; there is a lunch gap between
// 13:00 and 14:00 and nothing is bookable outside 09:00-18:00.

type Slot struct {
	Label    string
	StartMin int
	EndMin   int
}

var slots = []Slot{
	{"9-10", 9 * 60, 10 * 60},
	{"10-11", 10 * 60, 11 * 60},
	{"11-12", 11 * 60, 12 * 60},
	{"12-1", 12 * 60, 13 * 60},
	{"2-3", 14 * 60, 15 * 60},
	{"3-4", 15 * 60, 16 * 60},
	{"4-5", 16 * 60, 17 * 60},
	{"5-6", 17 * 60, 18 * 60},
}

// Slots returns the full slot table in clinic order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// SlotFor maps a clock time ("15:04") to its slot label. The mapping is a
// pure function of the input: equal times always yield equal labels.
func SlotFor(clock string) (string, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return "", httperr.ErrValidation("invalid_time", "Appointment time must be HH:MM.")
	}

	minute := t.Hour()*60 + t.Minute()
	for _, s := range slots {
		if minute >= s.StartMin && minute < s.EndMin {
			return s.Label, nil
		}
	}

	return "", httperr.ErrValidation("time_outside_slots", "Appointment time does not fall into any bookable slot.")
}

// IsSlotLabel reports whether label is one of the fixed slot names.
func IsSlotLabel(label string) bool {
	for _, s := range slots {
		if s.Label == label {
			return true
		}
	}
	return false
}
