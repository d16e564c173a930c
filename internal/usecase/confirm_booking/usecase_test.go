package confirm_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	dialogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/dialog"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

type observerSpy struct{ categories []string }

func (o *observerSpy) ObserveBookingConfirmed(category string) {
	o.categories = append(o.categories, category)
}

type failingSink struct{}

func (failingSink) Create(context.Context, *domain.Booking) (*domain.Booking, error) {
	return nil, errors.New("sink unavailable")
}

func badminton() domain.RentalItem {
	price := 3000.0
	return domain.RentalItem{
		ID:       "4",
		Category: domain.CategoryPlaygrounds,
		Price:    2000,
		Availability: []domain.AvailabilitySlot{{
			Date:      "2026-11-02",
			Available: true,
			TimeSlots: []domain.TimeSlot{{Start: "19:00", End: "20:00", Available: true, Price: &price}},
		}},
	}
}

// seedDialog сохраняет диалог с выбранными датой и слотом
func seedDialog(t *testing.T, store *dialogRepo.MemoryStore, withDate bool) domain.BookingDialog {
	t.Helper()

	resolver := availability.NewResolver(&availability.FixedTimeProvider{At: testNow})
	d := domain.NewBookingDialog("d-1", 7, badminton(), testNow)

	if withDate {
		date, _ := time.Parse(domain.DateFormat, "2026-11-02")
		var err error
		d, err = d.ChooseDate(resolver, date, testNow)
		require.NoError(t, err)
		d, err = d.ChooseTimeSlot(resolver, "19:00", testNow)
		require.NoError(t, err)
	}

	require.NoError(t, store.Save(context.Background(), d))
	return d
}

// slowSink задерживает запись, чтобы параллельные подтверждения пересеклись
type slowSink struct {
	delay time.Duration
	repo  *bookingRepo.MemoryRepository
}

func (s slowSink) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	time.Sleep(s.delay)
	return s.repo.Create(ctx, b)
}

func newUseCaseAt(store DialogStore, sink BookingSink, observer ConfirmObserver, at time.Time) *UseCase {
	clock := &availability.FixedTimeProvider{At: at}
	uc := NewUseCase(store, sink, availability.NewResolver(clock), observer, logger.NewNop())
	uc.timeProvider = clock
	return uc
}

func newUseCase(store DialogStore, sink BookingSink, observer ConfirmObserver) *UseCase {
	return newUseCaseAt(store, sink, observer, testNow)
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	store := dialogRepo.NewMemoryStore(0, nil)
	sink := bookingRepo.NewMemoryRepository()
	spy := &observerSpy{}
	seedDialog(t, store, true)

	resp, err := newUseCase(store, sink, spy).Execute(ctx, &Request{UserID: 7, DialogID: "d-1"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Booking.ID)
	assert.Equal(t, int64(7), resp.Booking.UserID)
	assert.Equal(t, domain.CategoryPlaygrounds, resp.Booking.Category)
	assert.Equal(t, "2026-11-02", resp.Booking.Data.Date)
	assert.Equal(t, 3000.0, resp.Booking.Data.TotalPrice)
	assert.Equal(t, domain.BookingSingle, resp.Booking.Data.BookingType)
	require.NotNil(t, resp.Booking.Data.TimeSlot)
	assert.Equal(t, "19:00", resp.Booking.Data.TimeSlot.Start.String())
	assert.Equal(t, testNow, resp.Booking.CreatedAt)

	assert.Equal(t, domain.DialogConfirmed, resp.Dialog.State)
	stored, err := store.Get(ctx, "d-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DialogConfirmed, stored.State)
	assert.Nil(t, stored.TimeSlot)

	saved, err := sink.GetByID(ctx, resp.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Booking.Data, saved.Data)

	assert.Equal(t, []string{"playgrounds"}, spy.categories)

	// повторное подтверждение без новой даты отклоняется
	_, err = newUseCase(store, sink, spy).Execute(ctx, &Request{UserID: 7, DialogID: "d-1"})
	assert.ErrorIs(t, err, ErrDateNotChosen)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	ctx := context.Background()

	store := dialogRepo.NewMemoryStore(0, nil)
	seedDialog(t, store, false)
	uc := newUseCase(store, bookingRepo.NewMemoryRepository(), nil)

	_, err := uc.Execute(ctx, &Request{UserID: 7, DialogID: "d-1"})
	assert.ErrorIs(t, err, ErrDateNotChosen)

	_, err = uc.Execute(ctx, &Request{UserID: 8, DialogID: "d-1"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(ctx, &Request{UserID: 7, DialogID: "missing"})
	assert.ErrorIs(t, err, ErrDialogNotFound)

	_, err = uc.Execute(ctx, &Request{UserID: 0, DialogID: "d-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_SinkFailureKeepsSelection(t *testing.T) {
	ctx := context.Background()
	store := dialogRepo.NewMemoryStore(0, nil)
	before := seedDialog(t, store, true)
	spy := &observerSpy{}

	_, err := newUseCase(store, failingSink{}, spy).Execute(ctx, &Request{UserID: 7, DialogID: "d-1"})
	assert.ErrorIs(t, err, ErrInternal)

	stored, err := store.Get(ctx, "d-1")
	require.NoError(t, err)
	assert.Equal(t, before, stored)
	assert.Empty(t, spy.categories)
}

func TestUseCase_Execute_ConcurrentConfirmEmitsOneBooking(t *testing.T) {
	ctx := context.Background()
	store := dialogRepo.NewMemoryStore(0, nil)
	repo := bookingRepo.NewMemoryRepository()
	seedDialog(t, store, true)
	uc := newUseCase(store, slowSink{delay: 50 * time.Millisecond, repo: repo}, nil)

	const workers = 2
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, &Request{UserID: 7, DialogID: "d-1"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrDateNotChosen)
	}
	assert.Equal(t, 1, succeeded)

	bookings, err := repo.GetByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestUseCase_Execute_PastDateRejected(t *testing.T) {
	ctx := context.Background()
	store := dialogRepo.NewMemoryStore(0, nil)
	sink := bookingRepo.NewMemoryRepository()
	before := seedDialog(t, store, true)

	// дата 2026-11-02 выбрана 2026-10-17, подтверждение приходит 2026-11-05
	later := time.Date(2026, 11, 5, 9, 0, 0, 0, time.UTC)
	_, err := newUseCaseAt(store, sink, nil, later).Execute(ctx, &Request{UserID: 7, DialogID: "d-1"})
	assert.ErrorIs(t, err, ErrDateNotBookable)

	bookings, err := sink.GetByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	stored, err := store.Get(ctx, "d-1")
	require.NoError(t, err)
	assert.Equal(t, before, stored)
}
