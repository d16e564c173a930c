package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID      int64 `json:"userId"`      // чьи бронирования
	RequesterID int64 `json:"requesterId"` // кто спрашивает (из X-User-ID)
}

// Response модели

// TimeSlotResponse забронированный слот
type TimeSlotResponse struct {
	Start string   `json:"start"` // "14:00"
	End   string   `json:"end"`   // "18:00"
	Price *float64 `json:"price,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string            `json:"id"`
	UserID      int64             `json:"userId"`
	ItemID      string            `json:"itemId"`
	Category    string            `json:"category"`
	Date        string            `json:"date"` // "2026-11-02"
	TimeSlot    *TimeSlotResponse `json:"timeSlot,omitempty"`
	TotalPrice  float64           `json:"totalPrice"`
	BookingType string            `json:"bookingType"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		ItemID:      b.Data.ItemID,
		Category:    string(b.Category),
		Date:        b.Data.Date,
		TotalPrice:  b.Data.TotalPrice,
		BookingType: string(b.Data.BookingType),
		CreatedAt:   b.CreatedAt,
	}

	if b.HasTimeSlot() {
		resp.TimeSlot = &TimeSlotResponse{
			Start: b.Data.TimeSlot.Start.String(),
			End:   b.Data.TimeSlot.End.String(),
			Price: b.Data.TimeSlot.Price,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
