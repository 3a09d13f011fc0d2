package cache

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// ShopRepository источник настроек барбершопа
type ShopRepository interface {
	GetConfig(ctx context.Context) (*domain.ShopConfig, error)
	UpsertConfig(ctx context.Context, cfg *domain.ShopConfig) (*domain.ShopConfig, error)
	GetAutomation(ctx context.Context) (*domain.Automation, error)
	UpsertAutomation(ctx context.Context, a *domain.Automation) (*domain.Automation, error)
}

// Shop кэширует настройки барбершопа и автоматизации
type Shop struct {
	repo  ShopRepository
	cache *Cache
}

// NewShop создает кэширующий репозиторий настроек
func NewShop(repo ShopRepository, cache *Cache) *Shop {
	return &Shop{repo: repo, cache: cache}
}

// GetConfig возвращает настройки из кэша или из БД
// Ошибка "не найдено" не кэшируется
func (s *Shop) GetConfig(ctx context.Context) (*domain.ShopConfig, error) {
	var cfg domain.ShopConfig
	if s.cache.get(ctx, keyShopConfig, &cfg) {
		return &cfg, nil
	}

	loaded, err := s.repo.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, keyShopConfig, loaded)
	return loaded, nil
}

// UpsertConfig сохраняет настройки и обновляет кэш
func (s *Shop) UpsertConfig(ctx context.Context, cfg *domain.ShopConfig) (*domain.ShopConfig, error) {
	s.cache.invalidate(ctx, keyShopConfig)
	saved, err := s.repo.UpsertConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, keyShopConfig)
	return saved, nil
}

// GetAutomation возвращает настройки напоминаний из кэша или из БД
func (s *Shop) GetAutomation(ctx context.Context) (*domain.Automation, error) {
	var a domain.Automation
	if s.cache.get(ctx, keyAutomation, &a) {
		return &a, nil
	}

	loaded, err := s.repo.GetAutomation(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, keyAutomation, loaded)
	return loaded, nil
}

// UpsertAutomation сохраняет настройки напоминаний и сбрасывает кэш
func (s *Shop) UpsertAutomation(ctx context.Context, a *domain.Automation) (*domain.Automation, error) {
	s.cache.invalidate(ctx, keyAutomation)
	saved, err := s.repo.UpsertAutomation(ctx, a)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, keyAutomation)
	return saved, nil
}
