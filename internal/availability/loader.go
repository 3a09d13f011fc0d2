package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	shopRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/shop"
)

// ErrLoadSnapshot возвращается, если не удалось прочитать данные для расчета
var ErrLoadSnapshot = errors.New("availability: failed to load snapshot")

// ShopRepository источник часов работы
type ShopRepository interface {
	GetConfig(ctx context.Context) (*domain.ShopConfig, error)
}

// CatalogRepository источник длительностей услуг
type CatalogRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// AppointmentRepository источник записей
type AppointmentRepository interface {
	ListByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Loader собирает Snapshot на конкретный день из хранилищ
type Loader struct {
	shop         ShopRepository
	catalog      CatalogRepository
	appointments AppointmentRepository
	defaultHours domain.BusinessHours
}

// NewLoader создает загрузчик. defaultHours используются, пока настройки не сохранены
func NewLoader(shop ShopRepository, catalog CatalogRepository, appointments AppointmentRepository, defaultHours domain.BusinessHours) *Loader {
	return &Loader{
		shop:         shop,
		catalog:      catalog,
		appointments: appointments,
		defaultHours: defaultHours,
	}
}

// Load читает часы работы, каталог и активные записи на день date
// Внутри транзакции записи дня блокируются репозиторием
func (l *Loader) Load(ctx context.Context, date time.Time) (Snapshot, error) {
	hours, err := l.Hours(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	services, err := l.catalog.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: list services: %w", ErrLoadSnapshot, err)
	}

	day := domain.Midnight(date)
	appointments, err := l.appointments.ListByFilter(ctx, domain.AppointmentsFilter{
		From: &day,
		To:   &day,
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: list appointments: %w", ErrLoadSnapshot, err)
	}

	return NewSnapshot(hours, services, appointments), nil
}

// Hours возвращает сохраненные часы работы или значения по умолчанию
func (l *Loader) Hours(ctx context.Context) (domain.BusinessHours, error) {
	cfg, err := l.shop.GetConfig(ctx)
	if errors.Is(err, shopRepo.ErrConfigNotFound) {
		return l.defaultHours, nil
	}
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("%w: get shop config: %w", ErrLoadSnapshot, err)
	}
	return cfg.BusinessHours, nil
}
