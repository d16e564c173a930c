package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// OpenDialogRequest запрос на открытие диалога бронирования
type OpenDialogRequest struct {
	UserID int64
	ItemID string
}

// ChooseDateRequest выбор даты в диалоге
type ChooseDateRequest struct {
	UserID   int64
	DialogID string
	Date     string // YYYY-MM-DD
}

// ChooseTimeSlotRequest выбор слота на выбранную дату
type ChooseTimeSlotRequest struct {
	UserID    int64
	DialogID  string
	StartTime string // HH:MM
}

// Response модели

// TimeSlotResponse временной слот
type TimeSlotResponse struct {
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Available bool     `json:"available"`
	Price     *float64 `json:"price,omitempty"`
}

// DialogResponse текущее состояние диалога бронирования
type DialogResponse struct {
	ID          string             `json:"id"`
	ItemID      string             `json:"itemId"`
	ItemTitle   string             `json:"itemTitle"`
	State       string             `json:"state"`
	Granularity string             `json:"granularity"`
	Date        *string            `json:"date,omitempty"`
	TimeSlot    *TimeSlotResponse  `json:"timeSlot,omitempty"`
	TimeSlots   []TimeSlotResponse `json:"timeSlots"` // слоты на выбранную дату
	BasePrice   float64            `json:"basePrice"`
	PriceType   string             `json:"priceType"`
	TotalPrice  float64            `json:"totalPrice"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// Методы конвертации

// FromDomainTimeSlot конвертирует слот в DTO
func FromDomainTimeSlot(s domain.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		Start:     s.Start.String(),
		End:       s.End.String(),
		Available: s.Available,
		Price:     s.Price,
	}
}

// FromDomainDialog конвертирует снимок диалога в DTO.
// offered - слоты на выбранную дату, nil если дата не выбрана.
func FromDomainDialog(d domain.BookingDialog, offered []domain.TimeSlot) *DialogResponse {
	resp := &DialogResponse{
		ID:          d.ID,
		ItemID:      d.Item.ID,
		ItemTitle:   d.Item.Title,
		State:       string(d.State),
		Granularity: string(domain.SlotPolicyFor(d.Item.Category).Granularity()),
		TimeSlots:   make([]TimeSlotResponse, 0, len(offered)),
		BasePrice:   d.Item.Price,
		PriceType:   string(d.Item.PriceType),
		TotalPrice:  d.TotalPrice(),
		UpdatedAt:   d.UpdatedAt,
	}

	if d.HasDate() {
		date := d.Date
		resp.Date = &date
	}
	if d.TimeSlot != nil {
		slot := FromDomainTimeSlot(*d.TimeSlot)
		resp.TimeSlot = &slot
	}
	for _, s := range offered {
		resp.TimeSlots = append(resp.TimeSlots, FromDomainTimeSlot(s))
	}

	return resp
}
