package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	dialogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/dialog"
)

// UseCase use case подтверждения бронирования из диалога
type UseCase struct {
	dialogs      DialogStore
	sink         BookingSink
	rules        domain.BookingRules
	observer     ConfirmObserver
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// observer может быть nil, если метрики выключены
func NewUseCase(dialogs DialogStore, sink BookingSink, rules domain.BookingRules, observer ConfirmObserver, logger Logger) *UseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	return &UseCase{
		dialogs:      dialogs,
		sink:         sink,
		rules:        rules,
		observer:     observer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute подтверждает выбор в диалоге: сначала атомарно переводит диалог в confirmed,
// затем передает BookingData в приемник. Если приемник вернул ошибку, выбор возвращается в диалог.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: user=%d, dialog=%s", req.UserID, req.DialogID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Захватываем переход confirm: проверка владельца, даты и сброс выбора под одной блокировкой
	now := uc.timeProvider.Now()

	var (
		before domain.BookingDialog
		data   domain.BookingData
	)
	claimed, err := uc.dialogs.Update(ctx, req.DialogID, func(d domain.BookingDialog) (domain.BookingDialog, error) {
		if d.UserID != req.UserID {
			return d, ErrAccessDenied
		}

		next, bd, err := d.Confirm(uc.rules, now)
		if err != nil {
			return d, err
		}

		before, data = d, bd
		return next, nil
	})
	if err != nil {
		return nil, uc.mapClaimError(req, err)
	}

	// 3. Передаем запись в приемник
	booking := &domain.Booking{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Category:  before.Item.Category,
		Data:      data,
		CreatedAt: now,
	}

	created, err := uc.sink.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to hand booking to sink: %v", err)
		uc.release(ctx, claimed, before)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.observer.ObserveBookingConfirmed(string(created.Category))
	uc.logger.Info("ConfirmBooking: booking id=%s created: item=%s, date=%s, total=%.2f",
		created.ID, data.ItemID, data.Date, data.TotalPrice)

	return &Response{
		Booking: created,
		Dialog:  claimed,
	}, nil
}

func (uc *UseCase) mapClaimError(req *Request, err error) error {
	switch {
	case errors.Is(err, dialogRepo.ErrDialogNotFound):
		uc.logger.Warn("ConfirmBooking: dialog id=%s not found", req.DialogID)
		return ErrDialogNotFound

	case errors.Is(err, ErrAccessDenied):
		uc.logger.Warn("ConfirmBooking: access denied for user=%d to dialog id=%s", req.UserID, req.DialogID)
		return ErrAccessDenied

	case errors.Is(err, domain.ErrDateNotChosen):
		uc.logger.Warn("ConfirmBooking: dialog id=%s has no date chosen", req.DialogID)
		return ErrDateNotChosen

	case errors.Is(err, domain.ErrDateNotBookable):
		uc.logger.Warn("ConfirmBooking: dialog id=%s date is no longer bookable", req.DialogID)
		return ErrDateNotBookable

	default:
		uc.logger.Error("ConfirmBooking: failed to confirm dialog id=%s: %v", req.DialogID, err)
		return fmt.Errorf("%w: failed to update dialog: %v", ErrInternal, err)
	}
}

// release возвращает выбор в диалог после неудачной записи, если диалог не менялся после захвата
func (uc *UseCase) release(ctx context.Context, claimed, before domain.BookingDialog) {
	_, err := uc.dialogs.Update(ctx, claimed.ID, func(d domain.BookingDialog) (domain.BookingDialog, error) {
		if d.State != domain.DialogConfirmed || !d.UpdatedAt.Equal(claimed.UpdatedAt) {
			return d, errDialogChanged
		}
		return before, nil
	})
	if err != nil {
		uc.logger.Warn("ConfirmBooking: selection of dialog id=%s not restored: %v", claimed.ID, err)
	}
}
