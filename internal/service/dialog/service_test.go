package dialog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/catalog"
	dialogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/dialog"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()

	snapshot, err := catalogRepo.Load(context.Background(), catalogRepo.NewFixtureLoader(""))
	require.NoError(t, err)

	clock := &availability.FixedTimeProvider{At: testNow}
	svc := NewService(
		dialogRepo.NewMemoryStore(time.Hour, clock),
		snapshot,
		availability.NewResolver(clock),
		logger.NewNop(),
	)
	svc.timeProvider = clock
	return svc
}

func TestService_Flow(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	opened, err := svc.Open(ctx, &models.OpenDialogRequest{UserID: 7, ItemID: "1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.DialogNoSelection), opened.State)
	assert.Equal(t, string(domain.GranularityFlatSlots), opened.Granularity)
	assert.Nil(t, opened.Date)
	assert.Empty(t, opened.TimeSlots)

	withDate, err := svc.ChooseDate(ctx, &models.ChooseDateRequest{UserID: 7, DialogID: opened.ID, Date: "2026-11-02"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.DialogDateChosen), withDate.State)
	require.NotNil(t, withDate.Date)
	assert.Equal(t, "2026-11-02", *withDate.Date)
	assert.Len(t, withDate.TimeSlots, 3)
	assert.Equal(t, 8000.0, withDate.TotalPrice)

	withSlot, err := svc.ChooseTimeSlot(ctx, &models.ChooseTimeSlotRequest{UserID: 7, DialogID: opened.ID, StartTime: "14:00"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.DialogTimeSlotChosen), withSlot.State)
	require.NotNil(t, withSlot.TimeSlot)
	assert.Equal(t, "18:00", withSlot.TimeSlot.End)
	assert.Equal(t, 4500.0, withSlot.TotalPrice)

	got, err := svc.Get(ctx, 7, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, withSlot, got)

	require.NoError(t, svc.Close(ctx, 7, opened.ID))
	_, err = svc.Get(ctx, 7, opened.ID)
	assert.ErrorIs(t, err, ErrDialogNotFound)
}

func TestService_Rejections(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Open(ctx, &models.OpenDialogRequest{UserID: 7, ItemID: "404"})
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.Open(ctx, &models.OpenDialogRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	opened, err := svc.Open(ctx, &models.OpenDialogRequest{UserID: 7, ItemID: "1"})
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{name: "malformed date", want: ErrInvalidInput, call: func() error {
			_, err := svc.ChooseDate(ctx, &models.ChooseDateRequest{UserID: 7, DialogID: opened.ID, Date: "02.11.2026"})
			return err
		}},
		{name: "past date", want: ErrTransitionRejected, call: func() error {
			_, err := svc.ChooseDate(ctx, &models.ChooseDateRequest{UserID: 7, DialogID: opened.ID, Date: "2024-01-20"})
			return err
		}},
		{name: "unavailable date", want: ErrTransitionRejected, call: func() error {
			_, err := svc.ChooseDate(ctx, &models.ChooseDateRequest{UserID: 7, DialogID: opened.ID, Date: "2026-11-04"})
			return err
		}},
		{name: "slot before date", want: ErrTransitionRejected, call: func() error {
			_, err := svc.ChooseTimeSlot(ctx, &models.ChooseTimeSlotRequest{UserID: 7, DialogID: opened.ID, StartTime: "09:00"})
			return err
		}},
		{name: "malformed slot", want: ErrInvalidInput, call: func() error {
			_, err := svc.ChooseTimeSlot(ctx, &models.ChooseTimeSlotRequest{UserID: 7, DialogID: opened.ID, StartTime: "9am"})
			return err
		}},
		{name: "foreign dialog", want: ErrAccessDenied, call: func() error {
			_, err := svc.Get(ctx, 8, opened.ID)
			return err
		}},
		{name: "foreign close", want: ErrAccessDenied, call: func() error {
			return svc.Close(ctx, 8, opened.ID)
		}},
		{name: "unknown dialog", want: ErrDialogNotFound, call: func() error {
			_, err := svc.Get(ctx, 7, "missing")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), tt.want)
		})
	}

	// отклоненные переходы не меняют сохраненный снимок
	got, err := svc.Get(ctx, 7, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.DialogNoSelection), got.State)
}
