package send_notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberShop/internal/integrations/whatsapp"
)

// UseCase use case для отправки уведомления клиенту в WhatsApp
type UseCase struct {
	appointmentRepo AppointmentRepository
	shop            ShopSettings
	sender          Sender
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	shop ShopSettings,
	sender Sender,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		shop:            shop,
		sender:          sender,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute формирует сообщение по шаблону и отправляет его клиенту
// Для напоминаний после успешной отправки запись отмечается, чтобы не отправить повторно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SendNotification: appointment=%d, trigger=%s", req.AppointmentID, req.Trigger)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SendNotification: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем запись вместе с клиентом и услугой
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("SendNotification: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("SendNotification: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if !appointment.IsActive() {
		uc.logger.Warn("SendNotification: appointment id=%d is cancelled", appointment.ID)
		return nil, ErrAppointmentCancelled
	}

	// 3. Получаем настройки барбершопа для плейсхолдеров
	shop, err := uc.shop.Config(ctx)
	if err != nil {
		uc.logger.Error("SendNotification: failed to get shop config: %v", err)
		return nil, fmt.Errorf("%w: failed to get shop config: %v", ErrInternal, err)
	}

	// 4. Выбираем шаблон
	template, err := uc.template(ctx, req)
	if err != nil {
		return nil, err
	}

	message := domain.RenderMessage(template, domain.NewMessageData(appointment, shop))

	// 5. Отправляем сообщение
	if err := uc.sender.Send(ctx, appointment.ClientPhone, message); err != nil {
		uc.metrics.IncNotifications(string(req.Trigger), "failed")
		if errors.Is(err, whatsapp.ErrInvalidPhone) {
			uc.logger.Warn("SendNotification: client id=%d has invalid phone", appointment.ClientID)
			return nil, ErrInvalidPhone
		}
		uc.logger.Error("SendNotification: failed to send message for appointment id=%d: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailed, err)
	}
	uc.metrics.IncNotifications(string(req.Trigger), "sent")

	sentAt := uc.timeProvider.Now()

	// 6. Отмечаем отправленное напоминание
	if req.Trigger == TriggerReminder {
		if err := uc.appointmentRepo.MarkReminderSent(ctx, appointment.ID, sentAt); err != nil {
			uc.logger.Error("SendNotification: failed to mark reminder sent id=%d: %v", appointment.ID, err)
			return nil, fmt.Errorf("%w: failed to mark reminder sent: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("SendNotification: message sent for appointment id=%d", appointment.ID)

	return &Response{
		AppointmentID: appointment.ID,
		Phone:         appointment.ClientPhone,
		Message:       message,
		SentAt:        sentAt,
	}, nil
}

func (uc *UseCase) template(ctx context.Context, req *Request) (string, error) {
	if req.Template != nil {
		return *req.Template, nil
	}

	if req.Trigger == TriggerManual {
		return domain.ConfirmationTemplate, nil
	}

	automation, err := uc.shop.Automation(ctx)
	if err != nil {
		uc.logger.Error("SendNotification: failed to get automation: %v", err)
		return "", fmt.Errorf("%w: failed to get automation: %v", ErrInternal, err)
	}
	if automation.ReminderTemplate == "" {
		return domain.DefaultReminderTemplate, nil
	}
	return automation.ReminderTemplate, nil
}
