package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AssistantService/pkg/txmanager"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её -
// подтверждение формы выполняет upsert клиента и вставку бронирования
// в одной транзакции
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_id",
			"booking_type",
			"date",
			"time",
			"status",
		).
		Values(
			booking.CustomerID,
			booking.BookingType,
			booking.Date,
			booking.Time,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с данными клиента
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRecord, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := recordSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.BookingRecord
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.BookingType,
		&record.Date,
		&record.Time,
		&record.Status,
		&record.Name,
		&record.Email,
		&record.Phone,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	record.CreatedAt = createdAt.Time

	return &record, nil
}

// ListWithFilter получает список бронирований с данными клиентов
// Фильтры опциональны: имя и email - частичное совпадение без учета регистра,
// дата - точное совпадение
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRecord, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := recordSelect()

	if filter.Name != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"c.name": "%" + *filter.Name + "%"})
	}
	if filter.Email != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"c.email": "%" + *filter.Email + "%"})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.date": *filter.Date})
	}

	query, args, err := selectBuilder.
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.BookingRecord, 0)
	for rows.Next() {
		var record domain.BookingRecord
		var createdAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.BookingType,
			&record.Date,
			&record.Time,
			&record.Status,
			&record.Name,
			&record.Email,
			&record.Phone,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}

		record.CreatedAt = createdAt.Time
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// recordSelect базовый SELECT бронирований с join на клиентов
func recordSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"b.id",
		"b.booking_type",
		"b.date",
		"b.time",
		"b.status",
		"c.name",
		"c.email",
		"c.phone",
		"b.created_at",
	).
		From("bookings b").
		Join("customers c ON b.customer_id = c.customer_id")
}
