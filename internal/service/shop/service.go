package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	shopRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/shop"
	"github.com/m04kA/SMC-BarberShop/internal/service/shop/models"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// Service сервис настроек барбершопа и автоматизации напоминаний
type Service struct {
	repo     ShopRepository
	defaults domain.ShopConfig
	logger   Logger
}

// NewService создает новый экземпляр сервиса
// defaults возвращаются, пока настройки не сохранены в БД
func NewService(repo ShopRepository, defaults domain.ShopConfig, logger Logger) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// Config возвращает сохраненные настройки или значения по умолчанию
func (s *Service) Config(ctx context.Context) (*domain.ShopConfig, error) {
	cfg, err := s.repo.GetConfig(ctx)
	if errors.Is(err, shopRepo.ErrConfigNotFound) {
		defaults := s.defaults
		return &defaults, nil
	}
	if err != nil {
		s.logger.Error("Config: repository error: %v", err)
		return nil, fmt.Errorf("%w: Config - repository error: %v", ErrInternal, err)
	}
	return cfg, nil
}

// Automation возвращает сохраненные настройки напоминаний или значения по умолчанию
func (s *Service) Automation(ctx context.Context) (*domain.Automation, error) {
	a, err := s.repo.GetAutomation(ctx)
	if errors.Is(err, shopRepo.ErrAutomationNotFound) {
		return domain.DefaultAutomation(), nil
	}
	if err != nil {
		s.logger.Error("Automation: repository error: %v", err)
		return nil, fmt.Errorf("%w: Automation - repository error: %v", ErrInternal, err)
	}
	return a, nil
}

// GetConfig получает настройки барбершопа
func (s *Service) GetConfig(ctx context.Context) (*models.ShopConfigResponse, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainShopConfig(cfg), nil
}

// UpdateConfig обновляет настройки барбершопа
// Часы работы проверяются вместе: открытие должно быть раньше закрытия
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ShopConfigResponse, error) {
	s.logger.Info("UpdateConfig: updating shop config")

	// 1. Получаем текущие настройки
	current, err := s.Config(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения
	updated := *current
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		updated.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		updated.City = strings.TrimSpace(*req.City)
	}
	if req.WhatsApp != nil {
		updated.WhatsApp = domain.NormalizePhone(*req.WhatsApp)
	}
	if req.OpeningTime != nil {
		opening, err := types.NewTimeStringFromString(*req.OpeningTime)
		if err != nil {
			s.logger.Warn("UpdateConfig: invalid openingTime=%q", *req.OpeningTime)
			return nil, fmt.Errorf("%w: invalid openingTime: %v", ErrInvalidInput, err)
		}
		updated.BusinessHours.Opening = opening
	}
	if req.ClosingTime != nil {
		closing, err := types.NewTimeStringFromString(*req.ClosingTime)
		if err != nil {
			s.logger.Warn("UpdateConfig: invalid closingTime=%q", *req.ClosingTime)
			return nil, fmt.Errorf("%w: invalid closingTime: %v", ErrInvalidInput, err)
		}
		updated.BusinessHours.Closing = closing
	}

	// 3. Валидируем результат
	if err := validateConfig(&updated); err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, err
	}

	// 4. Сохраняем
	saved, err := s.repo.UpsertConfig(ctx, &updated)
	if err != nil {
		s.logger.Error("UpdateConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: business hours %s-%s", saved.BusinessHours.Opening, saved.BusinessHours.Closing)
	return models.FromDomainShopConfig(saved), nil
}

// GetAutomation получает настройки напоминаний
func (s *Service) GetAutomation(ctx context.Context) (*models.AutomationResponse, error) {
	a, err := s.Automation(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainAutomation(a), nil
}

// UpdateAutomation обновляет настройки напоминаний
func (s *Service) UpdateAutomation(ctx context.Context, req *models.UpdateAutomationRequest) (*models.AutomationResponse, error) {
	s.logger.Info("UpdateAutomation: updating automation")

	current, err := s.Automation(ctx)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Enabled != nil {
		updated.Enabled = *req.Enabled
	}
	if req.ReminderLead != nil {
		updated.ReminderLead = domain.ReminderLead(*req.ReminderLead)
	}
	if req.ReminderTemplate != nil {
		updated.ReminderTemplate = *req.ReminderTemplate
	}

	if !updated.ReminderLead.IsValid() {
		s.logger.Warn("UpdateAutomation: invalid reminderLead=%q", updated.ReminderLead)
		return nil, fmt.Errorf("%w: reminderLead must be one of 2min, 30min, 1h, 2h", ErrInvalidInput)
	}
	if strings.TrimSpace(updated.ReminderTemplate) == "" {
		return nil, fmt.Errorf("%w: reminderTemplate is required", ErrInvalidInput)
	}
	if len(updated.ReminderTemplate) > domain.MaxTemplateLength {
		return nil, fmt.Errorf("%w: reminderTemplate must be at most %d characters", ErrInvalidInput, domain.MaxTemplateLength)
	}

	saved, err := s.repo.UpsertAutomation(ctx, &updated)
	if err != nil {
		s.logger.Error("UpdateAutomation: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateAutomation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAutomation: enabled=%t, lead=%s", saved.Enabled, saved.ReminderLead)
	return models.FromDomainAutomation(saved), nil
}

// validateConfig валидирует настройки барбершопа
func validateConfig(cfg *domain.ShopConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(cfg.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if cfg.WhatsApp != "" && !domain.ValidPhone(cfg.WhatsApp) {
		return fmt.Errorf("%w: whatsapp must contain %d-%d digits", ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}
	if err := cfg.BusinessHours.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
