package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	clientRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/client"
	"github.com/m04kA/SMC-BarberShop/internal/service/clients/models"
)

// Service сервис клиентской базы
type Service struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List возвращает клиентов, search ищет по имени или телефону
func (s *Service) List(ctx context.Context, search string) (*models.ClientListResponse, error) {
	search = strings.TrimSpace(search)
	s.logger.Info("List: fetching clients, search=%q", search)

	clients, err := s.clientRepo.List(ctx, search)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// Lookup ищет клиента по телефону в любом формате
// Используется формой записи, чтобы подставить имя постоянного клиента
func (s *Service) Lookup(ctx context.Context, phone string) (*models.ClientResponse, error) {
	digits := domain.NormalizePhone(phone)
	if !domain.ValidPhone(digits) {
		return nil, fmt.Errorf("%w: phone must contain %d-%d digits",
			ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	client, err := s.clientRepo.GetByPhone(ctx, digits)
	if err != nil {
		return nil, s.mapRepoError("Lookup", err)
	}

	return models.FromDomainClient(client), nil
}

// History возвращает все записи клиента, включая отмененные
func (s *Service) History(ctx context.Context, clientID int64) (*models.ClientHistoryResponse, error) {
	s.logger.Info("History: fetching history for client id=%d", clientID)

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, s.mapRepoError("History", err)
	}

	appointments, err := s.appointmentRepo.ListByFilter(ctx, domain.AppointmentsFilter{
		ClientID:         &clientID,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("History: repository error for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("History: client id=%d has %d appointments", clientID, len(appointments))
	return models.NewClientHistory(client, appointments), nil
}

func (s *Service) mapRepoError(op string, err error) error {
	if errors.Is(err, clientRepo.ErrClientNotFound) {
		s.logger.Warn("%s: client not found", op)
		return ErrClientNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
