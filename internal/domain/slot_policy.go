package domain

// Granularity describes how bookings of a category are sliced within a day
type Granularity string

const (
	GranularityWholeDay   Granularity = "whole_day"   // no slots, the whole day is booked
	GranularityFlatSlots  Granularity = "flat_slots"  // one slot list shared by every bookable day
	GranularityDailySlots Granularity = "daily_slots" // slots are listed per availability date
)

// SlotPolicy resolves the time slots offered for an item on a date.
// Each category maps to exactly one policy.
type SlotPolicy interface {
	Granularity() Granularity
	TimeSlots(item *RentalItem, date string) []TimeSlot
}

type flatSlotPolicy struct{}

func (flatSlotPolicy) Granularity() Granularity { return GranularityFlatSlots }

// TimeSlots ignores the date: the item-level list applies to every day
func (flatSlotPolicy) TimeSlots(item *RentalItem, _ string) []TimeSlot {
	if len(item.TimeSlots) == 0 {
		return []TimeSlot{}
	}
	return item.TimeSlots
}

type dailySlotPolicy struct{}

func (dailySlotPolicy) Granularity() Granularity { return GranularityDailySlots }

func (dailySlotPolicy) TimeSlots(item *RentalItem, date string) []TimeSlot {
	entry, ok := item.AvailabilityFor(date)
	if !ok || len(entry.TimeSlots) == 0 {
		return []TimeSlot{}
	}
	return entry.TimeSlots
}

type wholeDayPolicy struct{}

func (wholeDayPolicy) Granularity() Granularity { return GranularityWholeDay }

func (wholeDayPolicy) TimeSlots(*RentalItem, string) []TimeSlot {
	return []TimeSlot{}
}

var slotPolicies = map[Category]SlotPolicy{
	CategoryVehicles:    flatSlotPolicy{},
	CategoryPlaygrounds: dailySlotPolicy{},
}

// SlotPolicyFor returns the policy of a category; unknown categories book whole days
func SlotPolicyFor(c Category) SlotPolicy {
	if p, ok := slotPolicies[c]; ok {
		return p
	}
	return wholeDayPolicy{}
}
