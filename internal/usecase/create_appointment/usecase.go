package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberShop/internal/availability"
	"github.com/m04kA/SMC-BarberShop/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/client"
	"github.com/m04kA/SMC-BarberShop/pkg/txmanager"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	catalogRepo     CatalogRepository
	loader          SnapshotLoader
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	catalogRepo CatalogRepository,
	loader SnapshotLoader,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		catalogRepo:     catalogRepo,
		loader:          loader,
		txManager:       txManager,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Свободные слоты пересчитываются внутри сериализуемой транзакции,
// поэтому два клиента не могут занять одно и то же время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%d, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var (
		result    *domain.Appointment
		service   *domain.Service
		newClient bool
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Повтор транзакции начинается с чистого состояния
		newClient = false

		// 3.1. Получаем услугу
		var err error
		service, err = uc.catalogRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
		}

		// 3.2. Находим или создаем клиента
		client, created, err := uc.resolveClient(txCtx, req)
		if err != nil {
			return err
		}
		newClient = created

		// 3.3. Пересчитываем свободные слоты на дату
		snapshot, err := uc.loader.Load(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load snapshot: %v", err)
			return fmt.Errorf("%w: failed to load snapshot: %w", ErrInternal, err)
		}

		slots := availability.ComputeSlots(availability.Request{
			Date:      req.Date,
			ServiceID: req.ServiceID,
		}, snapshot, now)

		// 3.4. Время начала должно быть среди предложенных слотов
		if !availability.Contains(slots, req.StartTime) {
			uc.logger.Warn("CreateAppointment: slot %s on %s is not available (%d free)",
				req.StartTime, req.Date.Format(domain.DateFormat), len(slots))
			return ErrSlotNotAvailable
		}

		// 3.5. Сохраняем запись
		createdAppointment, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:  client.ID,
			ServiceID: service.ID,
			Date:      domain.Midnight(req.Date),
			StartTime: req.StartTime,
			Status:    domain.StatusPending,
			Notes:     req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		createdAppointment.ClientName = client.Name
		createdAppointment.ClientPhone = client.Phone
		createdAppointment.ServiceName = service.Name
		createdAppointment.ServicePrice = service.Price
		result = createdAppointment
		return nil
	})

	if err != nil {
		// Конфликт сериализации, оставшийся после повторов, означает занятый слот
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: serialization conflict after retries: %v", err)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	if newClient {
		uc.metrics.IncAppointmentsCreated("new")
	} else {
		uc.metrics.IncAppointmentsCreated("existing")
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d for client id=%d",
		result.ID, result.ClientID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		NewClient:       newClient,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		DurationMinutes: service.DurationMinutes,
		Date:            result.Date,
		StartTime:       result.StartTime,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// resolveClient возвращает клиента по ID или ищет его по телефону,
// создавая нового, если телефон еще не зарегистрирован
func (uc *UseCase) resolveClient(ctx context.Context, req *Request) (*domain.Client, bool, error) {
	if req.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: client id=%d not found", *req.ClientID)
				return nil, false, ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", *req.ClientID, err)
			return nil, false, fmt.Errorf("%w: failed to get client: %w", ErrInternal, err)
		}
		return client, false, nil
	}

	phone := domain.NormalizePhone(req.ClientPhone)

	client, err := uc.clientRepo.GetByPhone(ctx, phone)
	if err == nil {
		return client, false, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("CreateAppointment: failed to get client by phone: %v", err)
		return nil, false, fmt.Errorf("%w: failed to get client: %w", ErrInternal, err)
	}

	client, err = uc.clientRepo.Create(ctx, &domain.Client{
		Name:  strings.TrimSpace(req.ClientName),
		Phone: phone,
		Email: req.ClientEmail,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create client: %v", err)
		return nil, false, fmt.Errorf("%w: failed to create client: %w", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created client id=%d", client.ID)
	return client, true, nil
}
