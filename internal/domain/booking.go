package domain

import "time"

// BookingType distinguishes single and multi-date bookings
type BookingType string

const (
	BookingSingle   BookingType = "single"
	BookingMultiple BookingType = "multiple" // declared, never produced
)

// BookingData is the record handed to the booking sink on confirmation
type BookingData struct {
	ItemID      string      `json:"itemId"`
	Date        string      `json:"date"` // YYYY-MM-DD
	TimeSlot    *TimeSlot   `json:"timeSlot,omitempty"`
	TotalPrice  float64     `json:"totalPrice"`
	BookingType BookingType `json:"bookingType"`
}

// Booking is a confirmed BookingData as stored by the sink
type Booking struct {
	ID        string
	UserID    int64
	Category  Category
	Data      BookingData
	CreatedAt time.Time
}

// HasTimeSlot returns true if the booking is slot-granular
func (b *Booking) HasTimeSlot() bool {
	return b.Data.TimeSlot != nil
}
