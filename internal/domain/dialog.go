package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// DialogState is the booking dialog position
type DialogState string

const (
	DialogNoSelection    DialogState = "no_selection"
	DialogDateChosen     DialogState = "date_chosen"
	DialogTimeSlotChosen DialogState = "time_slot_chosen"
	DialogConfirmed      DialogState = "confirmed" // selection cleared, behaves like no_selection
)

var (
	ErrDateNotBookable  = errors.New("date is not bookable")
	ErrDateNotChosen    = errors.New("date is not chosen")
	ErrSlotNotOffered   = errors.New("time slot is not offered on this date")
	ErrSlotNotAvailable = errors.New("time slot is not available")
)

// BookingRules answers calendar questions for the dialog
type BookingRules interface {
	CanBook(item *RentalItem, date time.Time) bool
	TimeSlots(item *RentalItem, date time.Time) []TimeSlot
}

// BookingDialog is an immutable snapshot of a booking dialog over one item.
// Transitions return a new value and never modify the receiver.
type BookingDialog struct {
	ID        string
	UserID    int64
	Item      RentalItem
	State     DialogState
	Date      string // YYYY-MM-DD, empty when no date is chosen
	TimeSlot  *TimeSlot
	UpdatedAt time.Time
}

// NewBookingDialog opens a dialog with nothing selected
func NewBookingDialog(id string, userID int64, item RentalItem, now time.Time) BookingDialog {
	return BookingDialog{
		ID:        id,
		UserID:    userID,
		Item:      item,
		State:     DialogNoSelection,
		UpdatedAt: now,
	}
}

// HasDate reports whether the dialog holds a chosen date
func (d BookingDialog) HasDate() bool {
	return d.State == DialogDateChosen || d.State == DialogTimeSlotChosen
}

// TotalPrice is the price shown for the current selection
func (d BookingDialog) TotalPrice() float64 {
	return d.Item.PriceFor(d.TimeSlot)
}

// ChooseDate is allowed from any state and drops a previously chosen slot
func (d BookingDialog) ChooseDate(rules BookingRules, date time.Time, now time.Time) (BookingDialog, error) {
	if !rules.CanBook(&d.Item, date) {
		return d, ErrDateNotBookable
	}

	next := d
	next.State = DialogDateChosen
	next.Date = date.Format(DateFormat)
	next.TimeSlot = nil
	next.UpdatedAt = now
	return next, nil
}

// ChooseTimeSlot picks one of the slots offered on the chosen date
func (d BookingDialog) ChooseTimeSlot(rules BookingRules, start types.TimeString, now time.Time) (BookingDialog, error) {
	if !d.HasDate() {
		return d, ErrDateNotChosen
	}

	date, err := time.Parse(DateFormat, d.Date)
	if err != nil {
		return d, ErrDateNotChosen
	}

	slot, ok := FindTimeSlot(rules.TimeSlots(&d.Item, date), start)
	if !ok {
		return d, ErrSlotNotOffered
	}
	if !slot.Available {
		return d, ErrSlotNotAvailable
	}

	next := d
	next.State = DialogTimeSlotChosen
	next.TimeSlot = &slot
	next.UpdatedAt = now
	return next, nil
}

// Confirm emits the booking record and resets the selection.
// The chosen date is checked again: it may have become past or unavailable since it was chosen.
func (d BookingDialog) Confirm(rules BookingRules, now time.Time) (BookingDialog, BookingData, error) {
	if !d.HasDate() {
		return d, BookingData{}, ErrDateNotChosen
	}

	date, err := time.Parse(DateFormat, d.Date)
	if err != nil {
		return d, BookingData{}, ErrDateNotChosen
	}
	if !rules.CanBook(&d.Item, date) {
		return d, BookingData{}, ErrDateNotBookable
	}

	data := BookingData{
		ItemID:      d.Item.ID,
		Date:        d.Date,
		TotalPrice:  d.TotalPrice(),
		BookingType: BookingSingle,
	}
	if d.TimeSlot != nil {
		slot := *d.TimeSlot
		data.TimeSlot = &slot
	}

	next := d
	next.State = DialogConfirmed
	next.Date = ""
	next.TimeSlot = nil
	next.UpdatedAt = now
	return next, data, nil
}
