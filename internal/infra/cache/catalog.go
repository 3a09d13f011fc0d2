package cache

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// CatalogRepository источник услуг
type CatalogRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// Catalog кэширует список услуг поверх репозитория
// Любое изменение каталога сбрасывает кэш до и после записи в БД
type Catalog struct {
	repo  CatalogRepository
	cache *Cache
}

// NewCatalog создает кэширующий репозиторий услуг
func NewCatalog(repo CatalogRepository, cache *Cache) *Catalog {
	return &Catalog{repo: repo, cache: cache}
}

// List возвращает услуги из кэша или из БД
func (c *Catalog) List(ctx context.Context) ([]*domain.Service, error) {
	var services []*domain.Service
	if c.cache.get(ctx, keyServices, &services) {
		return services, nil
	}

	services, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.set(ctx, keyServices, services)
	return services, nil
}

// GetByID ищет услугу в закэшированном списке, иначе идет в БД
func (c *Catalog) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var services []*domain.Service
	if c.cache.get(ctx, keyServices, &services) {
		for _, s := range services {
			if s.ID == id {
				return s, nil
			}
		}
	}
	return c.repo.GetByID(ctx, id)
}

// Create добавляет услугу и сбрасывает кэш
func (c *Catalog) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	c.cache.invalidate(ctx, keyServices)
	created, err := c.repo.Create(ctx, service)
	if err != nil {
		return nil, err
	}
	c.cache.invalidate(ctx, keyServices)
	return created, nil
}

// Update обновляет услугу и сбрасывает кэш
func (c *Catalog) Update(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	c.cache.invalidate(ctx, keyServices)
	updated, err := c.repo.Update(ctx, service)
	if err != nil {
		return nil, err
	}
	c.cache.invalidate(ctx, keyServices)
	return updated, nil
}

// Delete удаляет услугу и сбрасывает кэш
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	c.cache.invalidate(ctx, keyServices)
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.cache.invalidate(ctx, keyServices)
	return nil
}
