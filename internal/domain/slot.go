package domain

import "github.com/m04kA/SMC-RentalService/pkg/types"

// TimeSlot is a sub-day booking window
type TimeSlot struct {
	Start     types.TimeString `json:"start"`
	End       types.TimeString `json:"end"`
	Available bool             `json:"available"`
	Price     *float64         `json:"price,omitempty"` // overrides the item base price
}

// HasPrice returns true if the slot overrides the item price
func (s *TimeSlot) HasPrice() bool {
	return s.Price != nil
}

// DurationMinutes returns the slot length, 0 for malformed slots
func (s *TimeSlot) DurationMinutes() int {
	start, err := s.Start.Minutes()
	if err != nil {
		return 0
	}
	end, err := s.End.Minutes()
	if err != nil || end < start {
		return 0
	}
	return end - start
}

// AvailabilitySlot is a per-calendar-day availability record
type AvailabilitySlot struct {
	Date      string     `json:"date"` // YYYY-MM-DD
	Available bool       `json:"available"`
	TimeSlots []TimeSlot `json:"timeSlots,omitempty"`
}

// FindTimeSlot looks a slot up by its start time
func FindTimeSlot(slots []TimeSlot, start types.TimeString) (TimeSlot, bool) {
	for _, s := range slots {
		if s.Start == start {
			return s, true
		}
	}
	return TimeSlot{}, false
}
