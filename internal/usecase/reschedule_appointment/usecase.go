package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberShop/internal/availability"
	"github.com/m04kA/SMC-BarberShop/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberShop/pkg/txmanager"
)

// UseCase use case для переноса записи на другое время
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	loader          SnapshotLoader
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	loader SnapshotLoader,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		loader:          loader,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет перенос записи
// Сама запись исключается из расчета, поэтому ее можно сдвинуть внутри собственного интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d, date=%s, time=%s",
		req.AppointmentID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем запись
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}

		if !appointment.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d has status %s", appointment.ID, appointment.Status)
			return ErrAppointmentCancelled
		}

		// 3.2. Определяем услугу
		serviceID := appointment.ServiceID
		if req.ServiceID != nil {
			serviceID = *req.ServiceID
		}

		if _, err := uc.catalogRepo.GetByID(txCtx, serviceID); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("RescheduleAppointment: service id=%d not found", serviceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get service id=%d: %v", serviceID, err)
			return fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
		}

		// 3.3. Пересчитываем слоты без учета самой записи
		snapshot, err := uc.loader.Load(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to load snapshot: %v", err)
			return fmt.Errorf("%w: failed to load snapshot: %w", ErrInternal, err)
		}

		slots := availability.ComputeSlots(availability.Request{
			Date:                 req.Date,
			ServiceID:            serviceID,
			ExcludeAppointmentID: &appointment.ID,
		}, snapshot, now)

		if !availability.Contains(slots, req.StartTime) {
			uc.logger.Warn("RescheduleAppointment: slot %s on %s is not available (%d free)",
				req.StartTime, req.Date.Format(domain.DateFormat), len(slots))
			return ErrSlotNotAvailable
		}

		// 3.4. Сохраняем новое время
		date := domain.Midnight(req.Date)
		if err := uc.appointmentRepo.Reschedule(txCtx, appointment.ID, serviceID, date, req.StartTime); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
		}

		// 3.5. Перечитываем запись с данными услуги
		updated, err := uc.appointmentRepo.GetByID(txCtx, appointment.ID)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to reload appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to reload appointment: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		// Конфликт сериализации, оставшийся после повторов, означает занятый слот
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("RescheduleAppointment: serialization conflict after retries: %v", err)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%d moved to %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime)

	return &Response{Appointment: result}, nil
}
