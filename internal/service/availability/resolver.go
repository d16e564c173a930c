package availability

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// IsDateBookable true iff the item lists the exact date and marks it available.
// Past dates are not checked here, see Resolver.CanBook.
func IsDateBookable(item *domain.RentalItem, date string) bool {
	entry, ok := item.AvailabilityFor(date)
	return ok && entry.Available
}

// TimeSlotsFor returns the slots offered on the date according to the category policy
func TimeSlotsFor(item *domain.RentalItem, date string) []domain.TimeSlot {
	return domain.SlotPolicyFor(item.Category).TimeSlots(item, date)
}

// ComputeTotal flat per-booking price: the chosen slot price if it has one, else the item price
func ComputeTotal(item *domain.RentalItem, chosen *domain.TimeSlot) float64 {
	return item.PriceFor(chosen)
}

// Resolver adds the calendar rule (no bookings in the past) on top of the pure lookups
type Resolver struct {
	timeProvider TimeProvider
}

// NewResolver создает резолвер доступности
func NewResolver(timeProvider TimeProvider) *Resolver {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Resolver{timeProvider: timeProvider}
}

// Today returns the current calendar day in the provider location
func (r *Resolver) Today() time.Time {
	now := r.timeProvider.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// IsPast true if date is strictly before today
func (r *Resolver) IsPast(date time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	today := r.Today()
	todayInDateLoc := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(todayInDateLoc)
}

// CanBook combines the past-date rule with the item availability
func (r *Resolver) CanBook(item *domain.RentalItem, date time.Time) bool {
	if r.IsPast(date) {
		return false
	}
	return IsDateBookable(item, date.Format(domain.DateFormat))
}

// TimeSlots returns the slots for a parsed date
func (r *Resolver) TimeSlots(item *domain.RentalItem, date time.Time) []domain.TimeSlot {
	return TimeSlotsFor(item, date.Format(domain.DateFormat))
}
