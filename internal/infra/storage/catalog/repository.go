package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const (
	itemsTable      = "rental_items"
	categoriesTable = "categories"
)

// Repository читает каталог из Postgres.
// Элементы и категории хранятся как jsonb, чтобы схема не дублировала модель витрины.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectItemsQuery() (string, []interface{}, error) {
	return psqlbuilder.Select("payload").
		From(itemsTable).
		OrderBy("created_at DESC", "id").
		ToSql()
}

func selectCategoriesQuery() (string, []interface{}, error) {
	return psqlbuilder.Select("payload").
		From(categoriesTable).
		OrderBy("position").
		ToSql()
}

// LoadItems возвращает все элементы каталога, новые первыми
func (r *Repository) LoadItems(ctx context.Context) ([]domain.RentalItem, error) {
	query, args, err := selectItemsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadItems - build select query: %v", ErrBuildQuery, err)
	}

	items := make([]domain.RentalItem, 0)
	err = r.scanPayloads(ctx, query, args, func(payload []byte) error {
		var item domain.RentalItem
		if err := json.Unmarshal(payload, &item); err != nil {
			return fmt.Errorf("%w: LoadItems - item payload: %v", ErrDecode, err)
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// LoadCategories возвращает таксономию в порядке position
func (r *Repository) LoadCategories(ctx context.Context) (domain.Taxonomy, error) {
	query, args, err := selectCategoriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadCategories - build select query: %v", ErrBuildQuery, err)
	}

	taxonomy := make(domain.Taxonomy, 0)
	err = r.scanPayloads(ctx, query, args, func(payload []byte) error {
		var category domain.CategoryConfig
		if err := json.Unmarshal(payload, &category); err != nil {
			return fmt.Errorf("%w: LoadCategories - category payload: %v", ErrDecode, err)
		}
		taxonomy = append(taxonomy, category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return taxonomy, nil
}

func (r *Repository) scanPayloads(ctx context.Context, query string, args []interface{}, fn func([]byte) error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return fmt.Errorf("%w: %v", ErrScanRow, err)
		}
		if err := fn(payload); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrScanRow, err)
	}
	return nil
}

func upsertCategoriesQuery(taxonomy domain.Taxonomy) (string, []interface{}, error) {
	builder := psqlbuilder.Insert(categoriesTable).
		Columns("id", "payload", "position")

	for i, category := range taxonomy {
		payload, err := json.Marshal(category)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Values(string(category.ID), string(payload), i)
	}

	return builder.
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, position = EXCLUDED.position").
		ToSql()
}

func upsertItemsQuery(items []domain.RentalItem) (string, []interface{}, error) {
	builder := psqlbuilder.Insert(itemsTable).
		Columns("id", "payload", "created_at")

	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Values(
			item.ID,
			string(payload),
			squirrel.Expr("COALESCE(NULLIF(?, '')::timestamptz, now())", item.CreatedAt),
		)
	}

	return builder.
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, created_at = EXCLUDED.created_at").
		ToSql()
}

// Seed записывает каталог в таблицы (upsert по id).
// Используется для первичного наполнения базы из фикстуры.
// Если в контексте есть транзакция, запросы выполняются в ней.
func (r *Repository) Seed(ctx context.Context, items []domain.RentalItem, taxonomy domain.Taxonomy) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(taxonomy) > 0 {
		query, args, err := upsertCategoriesQuery(taxonomy)
		if err != nil {
			return fmt.Errorf("%w: Seed - build categories upsert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Seed - upsert categories: %v", ErrExecQuery, err)
		}
	}

	if len(items) > 0 {
		query, args, err := upsertItemsQuery(items)
		if err != nil {
			return fmt.Errorf("%w: Seed - build items upsert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Seed - upsert items: %v", ErrExecQuery, err)
		}
	}

	return nil
}
