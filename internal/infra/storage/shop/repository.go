package shop

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberShop/pkg/psqlbuilder"
)

// singletonID единственная строка настроек
const singletonID = 1

// Repository репозиторий настроек барбершопа и автоматизации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает настройки барбершопа
func (r *Repository) GetConfig(ctx context.Context) (*domain.ShopConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"name",
		"address",
		"city",
		"whatsapp",
		"opening_time",
		"closing_time",
		"updated_at",
	).
		From("shop_config").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %w", ErrBuildQuery, err)
	}

	var cfg domain.ShopConfig
	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.Name,
		&cfg.Address,
		&cfg.City,
		&cfg.WhatsApp,
		&cfg.BusinessHours.Opening,
		&cfg.BusinessHours.Closing,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan config: %w", ErrScanRow, err)
	}
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// UpsertConfig создает или обновляет настройки барбершопа
func (r *Repository) UpsertConfig(ctx context.Context, cfg *domain.ShopConfig) (*domain.ShopConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shop_config").
		Columns("id", "name", "address", "city", "whatsapp", "opening_time", "closing_time").
		Values(
			singletonID,
			cfg.Name,
			cfg.Address,
			cfg.City,
			cfg.WhatsApp,
			cfg.BusinessHours.Opening,
			cfg.BusinessHours.Closing,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"name = EXCLUDED.name, address = EXCLUDED.address, city = EXCLUDED.city, " +
			"whatsapp = EXCLUDED.whatsapp, opening_time = EXCLUDED.opening_time, " +
			"closing_time = EXCLUDED.closing_time, updated_at = NOW() " +
			"RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - build insert query: %w", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - execute upsert: %w", ErrExecQuery, err)
	}
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// GetAutomation получает настройки автоматических напоминаний
func (r *Repository) GetAutomation(ctx context.Context) (*domain.Automation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("enabled", "reminder_lead", "reminder_template", "updated_at").
		From("automation").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAutomation - build select query: %w", ErrBuildQuery, err)
	}

	var a domain.Automation
	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.Enabled, &a.ReminderLead, &a.ReminderTemplate, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAutomationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAutomation - scan automation: %w", ErrScanRow, err)
	}
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// UpsertAutomation создает или обновляет настройки напоминаний
func (r *Repository) UpsertAutomation(ctx context.Context, a *domain.Automation) (*domain.Automation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("automation").
		Columns("id", "enabled", "reminder_lead", "reminder_template").
		Values(singletonID, a.Enabled, a.ReminderLead, a.ReminderTemplate).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"enabled = EXCLUDED.enabled, reminder_lead = EXCLUDED.reminder_lead, " +
			"reminder_template = EXCLUDED.reminder_template, updated_at = NOW() " +
			"RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertAutomation - build insert query: %w", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertAutomation - execute upsert: %w", ErrExecQuery, err)
	}
	a.UpdatedAt = updatedAt.Time

	return a, nil
}
