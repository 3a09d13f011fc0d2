package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Суффиксы ключей, к ним добавляется префикс из конфигурации
const (
	keyShopConfig = "shop:config"
	keyAutomation = "shop:automation"
	keyServices   = "catalog:services"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счетчик обращений к кэшу
type Metrics interface {
	IncCache(kind, result string)
}

// DefaultRetryAfter на сколько кэш отключается после ошибки Redis
const DefaultRetryAfter = 30 * time.Second

// Cache кэш в Redis с временным отключением при ошибках
// Пока Redis недоступен, все операции становятся пустыми и данные читаются из БД.
// Через retryAfter кэш снова пробует обратиться к Redis
type Cache struct {
	client     redis.UniversalClient
	prefix     string
	ttl        time.Duration
	retryAfter time.Duration
	logger     Logger
	metrics    Metrics
	now        func() time.Time

	mu            sync.RWMutex
	disabledUntil time.Time
	failing       bool
}

// New создает кэш. client == nil означает, что кэш выключен навсегда
func New(client redis.UniversalClient, prefix string, ttl time.Duration, logger Logger, metrics Metrics) *Cache {
	return &Cache{
		client:     client,
		prefix:     prefix,
		ttl:        ttl,
		retryAfter: DefaultRetryAfter,
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}
}

// Connect создает клиента Redis и проверяет соединение
// При недоступном Redis кэш стартует отключенным и повторяет попытку через retryAfter
func Connect(ctx context.Context, opts *redis.Options, prefix string, ttl time.Duration, logger Logger, metrics Metrics) *Cache {
	c := New(redis.NewClient(opts), prefix, ttl, logger, metrics)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.client.Ping(pingCtx).Err(); err != nil {
		c.handleError(err, "ping")
		return c
	}

	logger.Info("Cache: redis connected at %s (ttl=%s)", opts.Addr, ttl)
	return c
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// IsAvailable возвращает true, если кэш работает или пора снова попробовать Redis
func (c *Cache) IsAvailable() bool {
	if c.client == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.now().Before(c.disabledUntil)
}

func (c *Cache) key(suffix string) string {
	return c.prefix + suffix
}

func (c *Cache) count(kind, result string) {
	if c.metrics != nil {
		c.metrics.IncCache(kind, result)
	}
}

// handleError выключает кэш на retryAfter после ошибки Redis
func (c *Cache) handleError(err error, operation string) {
	if err == nil || errors.Is(err, redis.Nil) {
		c.markHealthy()
		return
	}

	c.mu.Lock()
	wasFailing := c.failing
	c.failing = true
	c.disabledUntil = c.now().Add(c.retryAfter)
	c.mu.Unlock()

	if !wasFailing {
		c.logger.Warn("Cache: %s failed, disabling cache for %s: %v", operation, c.retryAfter, err)
	}
}

func (c *Cache) markHealthy() {
	c.mu.Lock()
	recovered := c.failing
	c.failing = false
	c.mu.Unlock()

	if recovered {
		c.logger.Info("Cache: redis is back, cache enabled")
	}
}

// get читает значение и декодирует его в dest
func (c *Cache) get(ctx context.Context, kind string, dest interface{}) bool {
	if !c.IsAvailable() {
		return false
	}

	data, err := c.client.Get(ctx, c.key(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.markHealthy()
		c.count(kind, "miss")
		return false
	}
	if err != nil {
		c.count(kind, "error")
		c.handleError(err, "get")
		return false
	}
	c.markHealthy()

	if err := json.Unmarshal(data, dest); err != nil {
		c.count(kind, "error")
		c.logger.Warn("Cache: failed to decode %s: %v", kind, err)
		return false
	}

	c.count(kind, "hit")
	return true
}

// set сохраняет значение с TTL
func (c *Cache) set(ctx context.Context, kind string, value interface{}) {
	if !c.IsAvailable() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache: failed to encode %s: %v", kind, fmt.Errorf("marshal: %w", err))
		return
	}

	c.handleError(c.client.Set(ctx, c.key(kind), data, c.ttl).Err(), "set")
}

// invalidate удаляет значение
func (c *Cache) invalidate(ctx context.Context, kind string) {
	if !c.IsAvailable() {
		return
	}

	c.handleError(c.client.Del(ctx, c.key(kind)).Err(), "delete")
}
