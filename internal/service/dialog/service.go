package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/catalog"
	dialogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/dialog"
	"github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Service сервис диалога бронирования: хранит снимки и проводит переходы состояний
type Service struct {
	store        DialogStore
	items        ItemSource
	rules        domain.BookingRules
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса диалогов
func NewService(store DialogStore, items ItemSource, rules domain.BookingRules, logger Logger) *Service {
	return &Service{
		store:        store,
		items:        items,
		rules:        rules,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Open открывает диалог бронирования для элемента каталога
func (s *Service) Open(ctx context.Context, req *models.OpenDialogRequest) (*models.DialogResponse, error) {
	s.logger.Info("Open: user=%d, item=%s", req.UserID, req.ItemID)

	if strings.TrimSpace(req.ItemID) == "" {
		return nil, fmt.Errorf("%w: itemId is required", ErrInvalidInput)
	}

	item, err := s.items.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			s.logger.Warn("Open: item id=%s not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("Open: failed to get item id=%s: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: Open - get item: %v", ErrInternal, err)
	}

	d := domain.NewBookingDialog(uuid.NewString(), req.UserID, *item, s.timeProvider.Now())
	if err := s.store.Save(ctx, d); err != nil {
		s.logger.Error("Open: failed to save dialog: %v", err)
		return nil, fmt.Errorf("%w: Open - save dialog: %v", ErrInternal, err)
	}

	s.logger.Info("Open: dialog id=%s opened for item=%s", d.ID, item.ID)
	return s.toResponse(d), nil
}

// Get возвращает текущее состояние диалога
func (s *Service) Get(ctx context.Context, userID int64, dialogID string) (*models.DialogResponse, error) {
	d, err := s.load(ctx, userID, dialogID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(d), nil
}

// ChooseDate выбирает дату. Допустимо из любого состояния, ранее выбранный слот сбрасывается.
func (s *Service) ChooseDate(ctx context.Context, req *models.ChooseDateRequest) (*models.DialogResponse, error) {
	s.logger.Info("ChooseDate: user=%d, dialog=%s, date=%s", req.UserID, req.DialogID, req.Date)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	return s.transition(ctx, req.UserID, req.DialogID, func(d domain.BookingDialog) (domain.BookingDialog, error) {
		next, err := d.ChooseDate(s.rules, date, now)
		if err != nil {
			s.logger.Warn("ChooseDate: dialog=%s rejected date=%s: %v", d.ID, req.Date, err)
			return d, fmt.Errorf("%w: %v", ErrTransitionRejected, err)
		}
		return next, nil
	})
}

// ChooseTimeSlot выбирает слот на выбранную дату
func (s *Service) ChooseTimeSlot(ctx context.Context, req *models.ChooseTimeSlotRequest) (*models.DialogResponse, error) {
	s.logger.Info("ChooseTimeSlot: user=%d, dialog=%s, start=%s", req.UserID, req.DialogID, req.StartTime)

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	return s.transition(ctx, req.UserID, req.DialogID, func(d domain.BookingDialog) (domain.BookingDialog, error) {
		next, err := d.ChooseTimeSlot(s.rules, start, now)
		if err != nil {
			s.logger.Warn("ChooseTimeSlot: dialog=%s rejected slot=%s: %v", d.ID, start, err)
			return d, fmt.Errorf("%w: %v", ErrTransitionRejected, err)
		}
		return next, nil
	})
}

// Close закрывает диалог без бронирования
func (s *Service) Close(ctx context.Context, userID int64, dialogID string) error {
	s.logger.Info("Close: user=%d, dialog=%s", userID, dialogID)

	if _, err := s.load(ctx, userID, dialogID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, dialogID); err != nil {
		if errors.Is(err, dialogRepo.ErrDialogNotFound) {
			return ErrDialogNotFound
		}
		s.logger.Error("Close: failed to delete dialog=%s: %v", dialogID, err)
		return fmt.Errorf("%w: Close - delete dialog: %v", ErrInternal, err)
	}

	return nil
}

// load читает диалог и проверяет владельца
func (s *Service) load(ctx context.Context, userID int64, dialogID string) (domain.BookingDialog, error) {
	d, err := s.store.Get(ctx, dialogID)
	if err != nil {
		if errors.Is(err, dialogRepo.ErrDialogNotFound) {
			s.logger.Warn("dialog id=%s not found", dialogID)
			return d, ErrDialogNotFound
		}
		s.logger.Error("failed to get dialog id=%s: %v", dialogID, err)
		return d, fmt.Errorf("%w: get dialog: %v", ErrInternal, err)
	}

	if d.UserID != userID {
		s.logger.Warn("access denied for user=%d to dialog id=%s", userID, dialogID)
		return d, ErrAccessDenied
	}

	return d, nil
}

// transition проверяет владельца и применяет переход атомарно в хранилище
func (s *Service) transition(ctx context.Context, userID int64, dialogID string, fn func(domain.BookingDialog) (domain.BookingDialog, error)) (*models.DialogResponse, error) {
	next, err := s.store.Update(ctx, dialogID, func(d domain.BookingDialog) (domain.BookingDialog, error) {
		if d.UserID != userID {
			s.logger.Warn("access denied for user=%d to dialog id=%s", userID, dialogID)
			return d, ErrAccessDenied
		}
		return fn(d)
	})
	if err != nil {
		switch {
		case errors.Is(err, dialogRepo.ErrDialogNotFound):
			s.logger.Warn("dialog id=%s not found", dialogID)
			return nil, ErrDialogNotFound
		case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrTransitionRejected):
			return nil, err
		default:
			s.logger.Error("failed to update dialog id=%s: %v", dialogID, err)
			return nil, fmt.Errorf("%w: update dialog: %v", ErrInternal, err)
		}
	}
	return s.toResponse(next), nil
}

// toResponse добавляет к снимку слоты, предлагаемые на выбранную дату
func (s *Service) toResponse(d domain.BookingDialog) *models.DialogResponse {
	var offered []domain.TimeSlot
	if d.HasDate() {
		if date, err := time.Parse(domain.DateFormat, d.Date); err == nil {
			offered = s.rules.TimeSlots(&d.Item, date)
		}
	}
	return models.FromDomainDialog(d, offered)
}
