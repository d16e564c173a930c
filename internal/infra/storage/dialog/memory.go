package dialog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type realTime struct{}

func (realTime) Now() time.Time { return time.Now() }

// MemoryStore хранит последние снимки диалогов в памяти процесса.
// Сессия истекает, если не менялась дольше ttl. ttl <= 0 отключает истечение.
type MemoryStore struct {
	mu      sync.RWMutex
	dialogs map[string]domain.BookingDialog
	ttl     time.Duration
	clock   TimeProvider
}

// NewMemoryStore создает хранилище сессий диалогов
func NewMemoryStore(ttl time.Duration, clock TimeProvider) *MemoryStore {
	if clock == nil {
		clock = realTime{}
	}
	return &MemoryStore{
		dialogs: make(map[string]domain.BookingDialog),
		ttl:     ttl,
		clock:   clock,
	}
}

func (s *MemoryStore) expired(d domain.BookingDialog) bool {
	return s.ttl > 0 && s.clock.Now().Sub(d.UpdatedAt) > s.ttl
}

// Save сохраняет снимок диалога, заменяя предыдущий
func (s *MemoryStore) Save(_ context.Context, d domain.BookingDialog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dialogs[d.ID] = d
	return nil
}

// Get возвращает последний снимок диалога
func (s *MemoryStore) Get(_ context.Context, id string) (domain.BookingDialog, error) {
	s.mu.RLock()
	d, ok := s.dialogs[id]
	s.mu.RUnlock()

	if !ok || s.expired(d) {
		return domain.BookingDialog{}, fmt.Errorf("%w: id=%s", ErrDialogNotFound, id)
	}
	return d, nil
}

// Update атомарно применяет fn к последнему снимку и сохраняет результат.
// Если fn вернула ошибку, снимок не меняется, а ошибка возвращается как есть.
func (s *MemoryStore) Update(_ context.Context, id string, fn func(domain.BookingDialog) (domain.BookingDialog, error)) (domain.BookingDialog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.dialogs[id]
	if !ok || s.expired(d) {
		return domain.BookingDialog{}, fmt.Errorf("%w: id=%s", ErrDialogNotFound, id)
	}

	next, err := fn(d)
	if err != nil {
		return d, err
	}

	s.dialogs[id] = next
	return next, nil
}

// Delete удаляет сессию диалога
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dialogs[id]; !ok {
		return fmt.Errorf("%w: id=%s", ErrDialogNotFound, id)
	}
	delete(s.dialogs, id)
	return nil
}

// Sweep удаляет истекшие сессии и возвращает их количество
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, d := range s.dialogs {
		if s.expired(d) {
			delete(s.dialogs, id)
			removed++
		}
	}
	return removed
}

// RunSweeper периодически вызывает Sweep, пока не отменен ctx
func (s *MemoryStore) RunSweeper(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
}
