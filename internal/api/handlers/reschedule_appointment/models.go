package reschedule_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/service/appointments/models"
	rescheduleAppointment "github.com/m04kA/SMC-BarberShop/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

// RescheduleRequest HTTP запрос на перенос записи
type RescheduleRequest struct {
	Date      string `json:"date"`                // "2026-10-21"
	StartTime string `json:"startTime"`           // "14:30"
	ServiceID *int64 `json:"serviceId,omitempty"` // смена услуги (опционально)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(appointmentID int64) (*rescheduleAppointment.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		Date:          date,
		StartTime:     startTime,
		ServiceID:     r.ServiceID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *models.AppointmentResponse {
	return models.FromDomainAppointment(resp.Appointment)
}
