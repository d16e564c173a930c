package get_availability

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	getAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ItemID      string            `json:"itemId"`
	Date        string            `json:"date"` // "2026-11-02"
	Bookable    bool              `json:"bookable"`
	Past        bool              `json:"past"`
	Granularity string            `json:"granularity"`
	TimeSlots   []domain.TimeSlot `json:"timeSlots"`
	BasePrice   float64           `json:"basePrice"`
	PriceType   string            `json:"priceType"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		ItemID:      resp.ItemID,
		Date:        resp.Date.Format(domain.DateFormat),
		Bookable:    resp.Bookable,
		Past:        resp.Past,
		Granularity: string(resp.Granularity),
		TimeSlots:   resp.TimeSlots,
		BasePrice:   resp.BasePrice,
		PriceType:   string(resp.PriceType),
	}
}
