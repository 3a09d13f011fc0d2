package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// View готовые представления списка записей
type View string

const (
	ViewToday    View = "today"
	ViewTomorrow View = "tomorrow"
	ViewUpcoming View = "upcoming" // с сегодняшнего дня без ограничения сверху
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
// View имеет приоритет над From/To
type ListAppointmentsRequest struct {
	View             *View      `json:"view,omitempty"`
	From             *time.Time `json:"from,omitempty"`   // Начало периода (опционально)
	To               *time.Time `json:"to,omitempty"`     // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
	ClientID         *int64     `json:"clientId,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateNotesRequest запрос на обновление заметок (null очищает)
type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID           int64   `json:"id"`
	ClientID     int64   `json:"clientId"`
	ClientName   string  `json:"clientName"`
	ClientPhone  string  `json:"clientPhone"`
	ServiceID    int64   `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Date         string  `json:"date"`      // "2026-10-20"
	StartTime    string  `json:"startTime"` // "10:00"
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`

	ReminderSentAt *time.Time `json:"reminderSentAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:             a.ID,
		ClientID:       a.ClientID,
		ClientName:     a.ClientName,
		ClientPhone:    a.ClientPhone,
		ServiceID:      a.ServiceID,
		ServiceName:    a.ServiceName,
		ServicePrice:   a.ServicePrice,
		Date:           a.Date.Format(domain.DateFormat),
		StartTime:      a.StartTime.String(),
		Status:         string(a.Status),
		Notes:          a.Notes,
		ReminderSentAt: a.ReminderSentAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if item := FromDomainAppointment(appointment); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
