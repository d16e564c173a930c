package favorites

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore избранное в памяти процесса, порядок добавления сохраняется
type MemoryStore struct {
	mu    sync.Mutex
	users map[int64][]string
}

// NewMemoryStore создает пустое хранилище избранного
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[int64][]string)}
}

// Toggle добавляет элемент в избранное или убирает его оттуда.
// Возвращает true, если элемент теперь в избранном.
func (s *MemoryStore) Toggle(_ context.Context, userID int64, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.users[userID]
	if idx := slices.Index(ids, itemID); idx >= 0 {
		s.users[userID] = slices.Delete(ids, idx, idx+1)
		return false, nil
	}

	s.users[userID] = append(ids, itemID)
	return true, nil
}

// List возвращает избранное пользователя в порядке добавления
func (s *MemoryStore) List(_ context.Context, userID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string{}, s.users[userID]...), nil
}
