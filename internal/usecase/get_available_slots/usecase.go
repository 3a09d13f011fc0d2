package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberShop/internal/availability"
	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	loader       SnapshotLoader
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	source       string
}

// NewUseCase создает новый экземпляр use case
// source - метка метрики (api, cli)
func NewUseCase(loader SnapshotLoader, timeProvider TimeProvider, metrics Metrics, logger Logger, source string) *UseCase {
	return &UseCase{
		loader:       loader,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		source:       source,
	}
}

// Execute выполняет use case получения доступных слотов
// Неизвестная услуга или прошедшая дата дают пустой список, а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем часы работы, каталог и записи дня
	snapshot, err := uc.loader.Load(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Считаем слоты
	slots := availability.ComputeSlots(availability.Request{
		Date:                 req.Date,
		ServiceID:            req.ServiceID,
		ExcludeAppointmentID: req.ExcludeAppointmentID,
	}, snapshot, now)

	uc.metrics.ObserveSlots(uc.source, len(slots))
	uc.logger.Info("GetAvailableSlots: found %d slots for service=%d on %s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}
