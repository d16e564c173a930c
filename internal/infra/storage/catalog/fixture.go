package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

//go:embed sample_catalog.json
var sampleCatalog []byte

// fixtureFile формат JSON файла каталога
type fixtureFile struct {
	Categories domain.Taxonomy     `json:"categories"`
	Items      []domain.RentalItem `json:"items"`
}

// FixtureLoader читает каталог из JSON файла.
// Пустой путь означает встроенный демонстрационный каталог.
type FixtureLoader struct {
	path string

	once    sync.Once
	fixture fixtureFile
	err     error
}

// NewFixtureLoader создает загрузчик каталога из файла
func NewFixtureLoader(path string) *FixtureLoader {
	return &FixtureLoader{path: path}
}

func (l *FixtureLoader) read() (fixtureFile, error) {
	l.once.Do(func() {
		data := sampleCatalog
		if l.path != "" {
			raw, err := os.ReadFile(l.path)
			if err != nil {
				l.err = fmt.Errorf("%w: %s: %v", ErrReadFixture, l.path, err)
				return
			}
			data = raw
		}

		if err := json.Unmarshal(data, &l.fixture); err != nil {
			l.err = fmt.Errorf("%w: %v", ErrDecode, err)
		}
	})
	return l.fixture, l.err
}

// LoadItems возвращает элементы каталога
func (l *FixtureLoader) LoadItems(_ context.Context) ([]domain.RentalItem, error) {
	f, err := l.read()
	if err != nil {
		return nil, err
	}
	return f.Items, nil
}

// LoadCategories возвращает таксономию
func (l *FixtureLoader) LoadCategories(_ context.Context) (domain.Taxonomy, error) {
	f, err := l.read()
	if err != nil {
		return nil, err
	}
	return f.Categories, nil
}
