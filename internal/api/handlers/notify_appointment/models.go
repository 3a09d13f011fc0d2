package notify_appointment

import (
	"time"

	sendNotification "github.com/m04kA/SMC-BarberShop/internal/usecase/send_notification"
)

// NotifyRequest HTTP запрос на отправку уведомления
// Тело необязательно, без шаблона отправляется подтверждение записи
type NotifyRequest struct {
	Template *string `json:"template,omitempty"`
}

// NotifyResponse HTTP ответ с отправленным сообщением
type NotifyResponse struct {
	AppointmentID int64     `json:"appointmentId"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message"`
	SentAt        time.Time `json:"sentAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *NotifyRequest) ToUseCaseRequest(appointmentID int64) *sendNotification.Request {
	return &sendNotification.Request{
		AppointmentID: appointmentID,
		Trigger:       sendNotification.TriggerManual,
		Template:      r.Template,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *sendNotification.Response) *NotifyResponse {
	return &NotifyResponse{
		AppointmentID: resp.AppointmentID,
		Phone:         resp.Phone,
		Message:       resp.Message,
		SentAt:        resp.SentAt,
	}
}
