package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberShop/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// timestampLayout формат локального времени без часового пояса для сравнения с date + time
const timestampLayout = "2006-01-02 15:04:05"

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"service_id",
			"appointment_date",
			"start_time",
			"status",
			"notes",
		).
		Values(
			appointment.ClientID,
			appointment.ServiceID,
			appointment.Date.Format(domain.DateFormat),
			appointment.StartTime,
			appointment.Status,
			appointment.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает запись по ID вместе с данными клиента и услуги
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appointment, nil
}

// ListByFilter получает записи с фильтрацией
// Поддерживает фильтрацию по:
// - Периоду (From, To) - опционально, границы включительно
// - Статусу (Status) - опционально
// - Клиенту (ClientID) - опционально
// - Включению отмененных записей (IncludeCancelled)
//
// Для одного дня внутри транзакции строки блокируются (FOR UPDATE),
// чтобы две параллельные записи не заняли один слот.
func (r *Repository) ListByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListDueForReminder получает активные записи без отправленного напоминания,
// которые начинаются в интервале (from, to] по локальному времени
func (r *Repository) ListDueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildDueQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueForReminder - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDueForReminder - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Reschedule переносит запись на другую дату и время, при необходимости меняя услугу
func (r *Repository) Reschedule(ctx context.Context, id, serviceID int64, date time.Time, startTime types.TimeString) error {
	return r.update(ctx, "Reschedule", id, map[string]interface{}{
		"service_id":       serviceID,
		"appointment_date": date.Format(domain.DateFormat),
		"start_time":       startTime,
		// После переноса напоминание нужно отправить заново
		"reminder_sent_at": nil,
	})
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return r.update(ctx, "UpdateStatus", id, map[string]interface{}{"status": status})
}

// UpdateNotes обновляет заметки (nil очищает)
func (r *Repository) UpdateNotes(ctx context.Context, id int64, notes *string) error {
	return r.update(ctx, "UpdateNotes", id, map[string]interface{}{"notes": notes})
}

// MarkReminderSent отмечает, что напоминание отправлено
func (r *Repository) MarkReminderSent(ctx context.Context, id int64, sentAt time.Time) error {
	return r.update(ctx, "MarkReminderSent", id, map[string]interface{}{"reminder_sent_at": sentAt})
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) update(ctx context.Context, op string, id int64, values map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		SetMap(values).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %w", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Helper methods

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"a.id",
		"a.client_id",
		"a.service_id",
		"a.appointment_date",
		"a.start_time",
		"a.status",
		"a.notes",
		"a.reminder_sent_at",
		"a.created_at",
		"a.updated_at",
		"c.name",
		"c.phone",
		"COALESCE(s.name, '')",
		"COALESCE(s.price, 0)",
	).
		From("appointments a").
		Join("clients c ON c.id = a.client_id").
		LeftJoin("services s ON s.id = a.service_id")
}

func buildListQuery(filter domain.AppointmentsFilter, inTx bool) (string, []interface{}, error) {
	selectBuilder := selectAppointments()

	// Фильтрация по периоду
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.appointment_date": filter.From.Format(domain.DateFormat)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"a.appointment_date": filter.To.Format(domain.DateFormat)})
	}

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.client_id": *filter.ClientID})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	} else if !filter.IncludeCancelled {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("a.appointment_date ASC", "a.start_time ASC", "a.id ASC")

	singleDay := filter.From != nil && filter.To != nil && domain.SameDay(*filter.From, *filter.To)
	if inTx && singleDay {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	return selectBuilder.ToSql()
}

func buildDueQuery(from, to time.Time) (string, []interface{}, error) {
	return selectAppointments().
		Where(squirrel.NotEq{"a.status": string(domain.StatusCancelled)}).
		Where(squirrel.Eq{"a.reminder_sent_at": nil}).
		Where(squirrel.Expr("(a.appointment_date + a.start_time) > ?::timestamp", from.Format(timestampLayout))).
		Where(squirrel.Expr("(a.appointment_date + a.start_time) <= ?::timestamp", to.Format(timestampLayout))).
		OrderBy("a.appointment_date ASC", "a.start_time ASC").
		ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.ClientID,
		&appointment.ServiceID,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.Status,
		&appointment.Notes,
		&appointment.ReminderSentAt,
		&createdAt,
		&updatedAt,
		&appointment.ClientName,
		&appointment.ClientPhone,
		&appointment.ServiceName,
		&appointment.ServicePrice,
	)
	if err != nil {
		return nil, err
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

// scanAppointments сканирует несколько записей из результата запроса
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}
