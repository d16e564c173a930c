package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotPolicyFor(t *testing.T) {
	item := &RentalItem{
		TimeSlots: []TimeSlot{{Start: "09:00", End: "18:00", Available: true}},
		Availability: []AvailabilitySlot{
			{Date: "2024-01-20", Available: true, TimeSlots: []TimeSlot{{Start: "10:00", End: "11:00", Available: true}}},
			{Date: "2024-01-21", Available: true},
		},
	}

	tests := []struct {
		name        string
		category    Category
		date        string
		granularity Granularity
		want        []TimeSlot
	}{
		{
			name:        "vehicles use the flat list",
			category:    CategoryVehicles,
			date:        "2024-01-21",
			granularity: GranularityFlatSlots,
			want:        item.TimeSlots,
		},
		{
			name:        "playgrounds use the per-date list",
			category:    CategoryPlaygrounds,
			date:        "2024-01-20",
			granularity: GranularityDailySlots,
			want:        item.Availability[0].TimeSlots,
		},
		{
			name:        "playgrounds date without slots",
			category:    CategoryPlaygrounds,
			date:        "2024-01-21",
			granularity: GranularityDailySlots,
			want:        []TimeSlot{},
		},
		{
			name:        "playgrounds absent date",
			category:    CategoryPlaygrounds,
			date:        "2024-02-01",
			granularity: GranularityDailySlots,
			want:        []TimeSlot{},
		},
		{
			name:        "other categories book whole days",
			category:    CategoryRealEstate,
			date:        "2024-01-20",
			granularity: GranularityWholeDay,
			want:        []TimeSlot{},
		},
		{
			name:        "unknown category books whole days",
			category:    Category("boats"),
			date:        "2024-01-20",
			granularity: GranularityWholeDay,
			want:        []TimeSlot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := SlotPolicyFor(tt.category)
			assert.Equal(t, tt.granularity, policy.Granularity())
			assert.Equal(t, tt.want, policy.TimeSlots(item, tt.date))
		})
	}
}

func TestFlatSlotPolicy_NoSlots(t *testing.T) {
	item := &RentalItem{Category: CategoryVehicles}
	assert.Empty(t, SlotPolicyFor(CategoryVehicles).TimeSlots(item, "2024-01-20"))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseSortKey("price_low"))
	assert.Equal(t, SortDistance, ParseSortKey("distance"))
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("cheapest"))
}

func TestPriceRange_ContainsIsInclusive(t *testing.T) {
	r := PriceRange{Min: 2000, Max: 8000}
	assert.True(t, r.Contains(2000))
	assert.True(t, r.Contains(8000))
	assert.False(t, r.Contains(1999.99))
	assert.False(t, r.Contains(8000.01))
}

func TestTaxonomy_Find(t *testing.T) {
	tax := Taxonomy{{ID: CategoryVehicles, Subcategories: []string{"Sedan", "SUV"}}}

	cfg, ok := tax.Find(CategoryVehicles)
	assert.True(t, ok)
	assert.True(t, cfg.HasSubcategory("SUV"))
	assert.False(t, cfg.HasSubcategory("suv"))

	_, ok = tax.Find(CategoryEventItems)
	assert.False(t, ok)
}
