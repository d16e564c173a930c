package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

func sampleBooking(id string, userID int64, createdAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		UserID:   userID,
		Category: domain.CategoryVehicles,
		Data: domain.BookingData{
			ItemID:      "1",
			Date:        "2026-11-02",
			TimeSlot:    &domain.TimeSlot{Start: "14:00", End: "18:00", Available: true, Price: ptr.Ptr(4500.0)},
			TotalPrice:  4500,
			BookingType: domain.BookingSingle,
		},
		CreatedAt: createdAt,
	}
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	base := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, sampleBooking("a", 7, base))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleBooking("b", 7, base.Add(time.Minute)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleBooking("c", 8, base))
	require.NoError(t, err)

	_, err = repo.Create(ctx, sampleBooking("a", 7, base))
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, sampleBooking("a", 7, base), got)

	_, err = repo.GetByID(ctx, "zzz")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	list, err := repo.GetByUserID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)

	empty, err := repo.GetByUserID(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestInsertQuery(t *testing.T) {
	createdAt := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	query, args, err := insertQuery(sampleBooking("a", 7, createdAt))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO bookings (id,user_id,item_id,category,booking_date"))
	assert.Contains(t, query, "$11")
	require.Len(t, args, 11)
	assert.Equal(t, "vehicles", args[3])
	assert.Equal(t, 4500.0, args[7])
	assert.Equal(t, "single", args[9])

	whole := sampleBooking("b", 7, createdAt)
	whole.Data.TimeSlot = nil
	_, args, err = insertQuery(whole)
	require.NoError(t, err)
	assert.Nil(t, args[5])
	assert.Nil(t, args[6])
	assert.Nil(t, args[7])
}
