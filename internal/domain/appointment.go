package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid returns true for known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a client's visit booked for one service
type Appointment struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	Date      time.Time        // календарный день (время суток игнорируется)
	StartTime types.TimeString // локальное время начала без часового пояса
	Status    AppointmentStatus
	Notes     *string

	ReminderSentAt *time.Time

	// Данные из связанных таблиц, заполняются при выборке списков
	ClientName   string
	ClientPhone  string
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanTransitionTo returns true if the status may change to next
// Отмена окончательна: из cancelled перейти нельзя
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if !next.IsValid() {
		return false
	}
	return a.Status != StatusCancelled
}

// CanBeRescheduled returns true if the appointment time can be changed
func (a *Appointment) CanBeRescheduled() bool {
	return a.IsActive()
}

// OnDay returns true if the appointment falls on the calendar day of date
// Сравниваются год, месяц и день каждого значения в его собственной локации
func (a *Appointment) OnDay(date time.Time) bool {
	return SameDay(a.Date, date)
}

// StartsAt returns the start instant of the appointment in loc
func (a *Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	return a.StartTime.On(a.Date, loc)
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	From             *time.Time         // Начало периода включительно (опционально)
	To               *time.Time         // Конец периода включительно (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	ClientID         *int64             // Фильтр по клиенту (опционально)
	IncludeCancelled bool               // Включать ли отмененные записи
}

// SameDay returns true if a and b share year, month and day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight returns the start of the calendar day of t in t's location
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
