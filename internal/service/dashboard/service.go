package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/internal/service/dashboard/models"
)

// Service сервис сводной статистики
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	catalogRepo     CatalogRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	catalogRepo CatalogRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		catalogRepo:     catalogRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Get собирает сводку по всем неотмененным записям
func (s *Service) Get(ctx context.Context) (*models.DashboardResponse, error) {
	now := s.timeProvider.Now()

	appointments, err := s.appointmentRepo.ListByFilter(ctx, domain.AppointmentsFilter{})
	if err != nil {
		s.logger.Error("Get: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: Get - list appointments: %v", ErrInternal, err)
	}

	totalClients, err := s.clientRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Get: failed to count clients: %v", err)
		return nil, fmt.Errorf("%w: Get - count clients: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Error("Get: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: Get - list services: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		TotalClients:      totalClients,
		TotalServices:     len(services),
		TodayAppointments: countOnDay(appointments, now),
		AverageTicket:     averageTicket(appointments),
		NextAppointment:   nextAppointment(appointments, now),
		MostBookedService: mostBooked(appointments),
	}

	s.logger.Info("Get: today=%d, clients=%d, services=%d", resp.TodayAppointments, resp.TotalClients, resp.TotalServices)
	return resp, nil
}

func countOnDay(appointments []*domain.Appointment, day time.Time) int {
	count := 0
	for _, a := range appointments {
		if a.IsActive() && a.OnDay(day) {
			count++
		}
	}
	return count
}

func averageTicket(appointments []*domain.Appointment) float64 {
	var sum float64
	count := 0
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		sum += a.ServicePrice
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// nextAppointment ищет ближайшую запись, начинающуюся после now
func nextAppointment(appointments []*domain.Appointment, now time.Time) *models.NextAppointment {
	var (
		next     *domain.Appointment
		earliest time.Time
	)
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		startsAt, err := a.StartsAt(now.Location())
		if err != nil || !startsAt.After(now) {
			continue
		}
		if next == nil || startsAt.Before(earliest) {
			next, earliest = a, startsAt
		}
	}
	if next == nil {
		return nil
	}
	return &models.NextAppointment{
		ID:          next.ID,
		ClientName:  next.ClientName,
		ServiceName: next.ServiceName,
		Date:        next.Date.Format(domain.DateFormat),
		StartTime:   next.StartTime.String(),
	}
}

// mostBooked считает записи по услугам, при равенстве выигрывает меньший ID
// Записи удаленных услуг не учитываются
func mostBooked(appointments []*domain.Appointment) *models.MostBookedService {
	counts := make(map[int64]int)
	names := make(map[int64]string)
	for _, a := range appointments {
		if !a.IsActive() || a.ServiceName == "" {
			continue
		}
		counts[a.ServiceID]++
		names[a.ServiceID] = a.ServiceName
	}

	var best *models.MostBookedService
	for id, count := range counts {
		if best == nil || count > best.Count || (count == best.Count && id < best.ServiceID) {
			best = &models.MostBookedService{ServiceID: id, Name: names[id], Count: count}
		}
	}
	return best
}
