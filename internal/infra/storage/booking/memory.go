package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// MemoryRepository приемник бронирований в памяти процесса
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
}

// NewMemoryRepository создает пустой приемник бронирований
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: make(map[string]domain.Booking)}
}

// Create сохраняет подтвержденное бронирование
func (r *MemoryRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; ok {
		return nil, fmt.Errorf("%w: id=%s", ErrDuplicateBooking, b.ID)
	}
	r.bookings[b.ID] = *b
	return b, nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

// GetByUserID получает бронирования пользователя, новые первыми
func (r *MemoryRepository) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			b := b
			result = append(result, &b)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
