package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BarberShop/internal/config"
	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/metrics"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// openDatabase открывает пул соединений, проверяет его и оборачивает метриками
// m может быть nil, тогда метрики запросов не пишутся
func openDatabase(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics, stopCh <-chan struct{}) (*dbmetrics.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	return dbmetrics.WrapWithDefault(db, m, stopCh), nil
}

// shopDefaults настройки барбершопа из конфигурации, пока в БД ничего не сохранено
// Конфигурация уже провалидирована в config.Load
func shopDefaults(cfg *config.Config) (domain.ShopConfig, error) {
	opening, err := types.NewTimeStringFromString(cfg.Shop.OpeningTime)
	if err != nil {
		return domain.ShopConfig{}, fmt.Errorf("shop.opening_time: %w", err)
	}
	closing, err := types.NewTimeStringFromString(cfg.Shop.ClosingTime)
	if err != nil {
		return domain.ShopConfig{}, fmt.Errorf("shop.closing_time: %w", err)
	}

	return domain.ShopConfig{
		Name: cfg.Shop.Name,
		BusinessHours: domain.BusinessHours{
			Opening: opening,
			Closing: closing,
		},
	}, nil
}
