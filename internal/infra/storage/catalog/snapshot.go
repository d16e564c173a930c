package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Snapshot неизменяемый каталог в памяти.
// Все методы отдают копии срезов, чтобы потребители не могли изменить общие данные.
type Snapshot struct {
	items    []domain.RentalItem
	taxonomy domain.Taxonomy
	byID     map[string]int
}

// NewSnapshot создает снимок каталога
func NewSnapshot(items []domain.RentalItem, taxonomy domain.Taxonomy) *Snapshot {
	byID := make(map[string]int, len(items))
	for i, item := range items {
		byID[item.ID] = i
	}
	return &Snapshot{
		items:    slices.Clone(items),
		taxonomy: slices.Clone(taxonomy),
		byID:     byID,
	}
}

// Load читает каталог из источника и фиксирует его в снимке
func Load(ctx context.Context, loader Loader) (*Snapshot, error) {
	taxonomy, err := loader.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(taxonomy) == 0 {
		return nil, ErrEmptyCatalog
	}

	items, err := loader.LoadItems(ctx)
	if err != nil {
		return nil, err
	}

	return NewSnapshot(items, taxonomy), nil
}

// ListItems возвращает все элементы каталога в исходном порядке (новые первыми)
func (s *Snapshot) ListItems(_ context.Context) ([]domain.RentalItem, error) {
	return slices.Clone(s.items), nil
}

// ListCategories возвращает таксономию
func (s *Snapshot) ListCategories(_ context.Context) (domain.Taxonomy, error) {
	return slices.Clone(s.taxonomy), nil
}

// GetItem получает элемент по ID
func (s *Snapshot) GetItem(_ context.Context, id string) (*domain.RentalItem, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrItemNotFound, id)
	}
	item := s.items[idx]
	return &item, nil
}

// Len количество элементов каталога
func (s *Snapshot) Len() int {
	return len(s.items)
}
