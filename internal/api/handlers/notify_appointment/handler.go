package notify_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	sendNotification "github.com/m04kA/SMC-BarberShop/internal/usecase/send_notification"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTemplate      = "некорректный шаблон сообщения"
	msgAppointmentNotFound  = "запись не найдена"
	msgAppointmentCancelled = "запись отменена, уведомление не отправлено"
	msgInvalidPhone         = "у клиента некорректный номер телефона"
	msgGatewayFailed        = "не удалось отправить сообщение в WhatsApp"
)

type Handler struct {
	useCase SendNotificationUseCase
	logger  Logger
}

func NewHandler(useCase SendNotificationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{id}/notify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/notify - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req NotifyRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /appointments/{id}/notify - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, sendNotification.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/notify - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, sendNotification.ErrAppointmentCancelled):
			h.logger.Warn("POST /appointments/{id}/notify - Appointment cancelled: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgAppointmentCancelled)

		case errors.Is(err, sendNotification.ErrInvalidPhone):
			h.logger.Warn("POST /appointments/{id}/notify - Invalid client phone: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, sendNotification.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/notify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		case errors.Is(err, sendNotification.ErrGatewayFailed):
			h.logger.Error("POST /appointments/{id}/notify - Gateway failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadGateway(w, msgGatewayFailed)

		default:
			h.logger.Error("POST /appointments/{id}/notify - Failed to send notification: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/notify - Notification sent: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
