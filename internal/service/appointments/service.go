package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberShop/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appointment, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainAppointment(appointment), nil
}

// List получает записи с фильтрацией
//
// Примеры использования:
// - Записи на сегодня: View = "today"
// - Записи на завтра: View = "tomorrow"
// - Предстоящие записи: View = "upcoming" (уже начавшиеся сегодня не попадают)
// - Записи за период: From и To
// - История клиента: ClientID и IncludeCancelled = true
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	now := s.timeProvider.Now()

	filter, err := s.toDomainFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	logMsg := "List: fetching appointments"
	if filter.From != nil {
		logMsg += fmt.Sprintf(", from=%s", filter.From.Format(domain.DateFormat))
	}
	if filter.To != nil {
		logMsg += fmt.Sprintf(", to=%s", filter.To.Format(domain.DateFormat))
	}
	if filter.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *filter.Status)
	}
	if filter.ClientID != nil {
		logMsg += fmt.Sprintf(", client=%d", *filter.ClientID)
	}
	s.logger.Info(logMsg)

	appointments, err := s.appointmentRepo.ListByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if req.View != nil && *req.View == models.ViewUpcoming {
		appointments = startingAfter(appointments, now)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus обновляет статус записи
// Отмененную запись нельзя вернуть в работу
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointment, err := s.get(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	if appointment.Status == newStatus {
		return models.FromDomainAppointment(appointment), nil
	}

	if !appointment.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d",
			appointment.Status, newStatus, id)
		return nil, ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, s.mapRepoError("UpdateStatus", id, err)
	}

	appointment.Status = newStatus
	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return models.FromDomainAppointment(appointment), nil
}

// UpdateNotes обновляет заметки записи. Пустая строка очищает заметки
func (s *Service) UpdateNotes(ctx context.Context, id int64, req *models.UpdateNotesRequest) error {
	s.logger.Info("UpdateNotes: updating notes of appointment id=%d", id)

	notes := req.Notes
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if len(trimmed) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		if trimmed == "" {
			notes = nil
		} else {
			notes = &trimmed
		}
	}

	if err := s.appointmentRepo.UpdateNotes(ctx, id, notes); err != nil {
		return s.mapRepoError("UpdateNotes", id, err)
	}

	s.logger.Info("UpdateNotes: successfully updated appointment id=%d", id)
	return nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(op, id, err)
	}
	return appointment, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%d not found", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// toDomainFilter конвертирует request в domain фильтр
func (s *Service) toDomainFilter(req *models.ListAppointmentsRequest) (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		From:             req.From,
		To:               req.To,
		ClientID:         req.ClientID,
		IncludeCancelled: req.IncludeCancelled,
	}

	if req.View != nil {
		today := domain.Midnight(s.timeProvider.Now())
		switch *req.View {
		case models.ViewToday:
			filter.From, filter.To = &today, &today
		case models.ViewTomorrow:
			tomorrow := today.AddDate(0, 0, 1)
			filter.From, filter.To = &tomorrow, &tomorrow
		case models.ViewUpcoming:
			filter.From, filter.To = &today, nil
		default:
			return filter, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, *req.View)
		}
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, ErrInvalidTimeRange
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	return filter, nil
}

// startingAfter оставляет записи, которые начинаются позже now
func startingAfter(appointments []*domain.Appointment, now time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		startsAt, err := a.StartsAt(now.Location())
		if err != nil || startsAt.After(now) {
			result = append(result, a)
		}
	}
	return result
}
