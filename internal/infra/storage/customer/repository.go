package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	"github.com/m04kA/SMC-AssistantService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AssistantService/pkg/txmanager"
)

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindOrCreate атомарный upsert клиента по email
// Один INSERT ... ON CONFLICT вместо пары lookup-then-insert, чтобы два
// конкурентных подтверждения с одним email не создали дубликат клиента.
// При конфликте существующая запись переиспользуется как есть:
// имя и телефон существующего клиента НЕ обновляются
func (r *Repository) FindOrCreate(ctx context.Context, name, email, phone string) (*domain.Customer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	// DO UPDATE SET email = EXCLUDED.email - no-op обновление, которое
	// заставляет PostgreSQL вернуть существующую строку через RETURNING
	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "email", "phone").
		Values(name, email, phone).
		Suffix("ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email " +
			"RETURNING customer_id, name, email, phone, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - build upsert query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - execute upsert: %v", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time

	return &customer, nil
}

// GetByEmail получает клиента по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"customer_id",
		"name",
		"email",
		"phone",
		"created_at",
	).
		From("customers").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan customer: %v", ErrScanRow, err)
	}

	customer.CreatedAt = createdAt.Time

	return &customer, nil
}
