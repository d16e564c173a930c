package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"user_id",
	"item_id",
	"category",
	"booking_date",
	"start_time",
	"end_time",
	"slot_price",
	"total_price",
	"booking_type",
	"created_at",
}

// Repository приемник бронирований в Postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func insertQuery(b *domain.Booking) (string, []interface{}, error) {
	var start, end interface{}
	var slotPrice interface{}
	if slot := b.Data.TimeSlot; slot != nil {
		start, end = slot.Start, slot.End
		if slot.Price != nil {
			slotPrice = *slot.Price
		}
	}

	return psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			b.ID,
			b.UserID,
			b.Data.ItemID,
			string(b.Category),
			b.Data.Date,
			start,
			end,
			slotPrice,
			b.Data.TotalPrice,
			string(b.Data.BookingType),
			b.CreatedAt,
		).
		ToSql()
}

// Create сохраняет подтвержденное бронирование
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertQuery(b)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: id=%s", ErrDuplicateBooking, b.ID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает бронирования пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		category    string
		bookingType string
		bookingDate time.Time
		start, end  *types.TimeString
		slotPrice   sql.NullFloat64
	)

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Data.ItemID,
		&category,
		&bookingDate,
		&start,
		&end,
		&slotPrice,
		&b.Data.TotalPrice,
		&bookingType,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Category = domain.Category(category)
	b.Data.BookingType = domain.BookingType(bookingType)
	b.Data.Date = bookingDate.Format(domain.DateFormat)

	if start != nil {
		slot := &domain.TimeSlot{Start: *start, Available: true}
		if end != nil {
			slot.End = *end
		}
		if slotPrice.Valid {
			price := slotPrice.Float64
			slot.Price = &price
		}
		b.Data.TimeSlot = slot
	}

	return &b, nil
}
