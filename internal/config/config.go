package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// ErrInvalidConfig возвращается, если конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация приложения
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	WhatsApp  WhatsAppConfig  `toml:"whatsapp"`
	Reminders RemindersConfig `toml:"reminders"`
	Shop      ShopConfig      `toml:"shop"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки кэша; пустой addr отключает кэш
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"`
	Prefix   string `toml:"prefix"`
}

// WhatsAppConfig настройки шлюза WhatsApp
type WhatsAppConfig struct {
	APIURL      string  `toml:"api_url"`
	APIKey      string  `toml:"api_key"`
	CountryCode string  `toml:"country_code"`
	Timeout     int     `toml:"timeout"`
	RatePerSec  float64 `toml:"rate_per_sec"`
	Burst       int     `toml:"burst"`
}

// RemindersConfig настройки фонового отправителя напоминаний
type RemindersConfig struct {
	Enabled      bool `toml:"enabled"`
	PollInterval int  `toml:"poll_interval"`
}

// ShopConfig значения по умолчанию для барбершопа, пока настройки не сохранены в БД
type ShopConfig struct {
	Name         string `toml:"name"`
	OpeningTime  string `toml:"opening_time"`
	ClosingTime  string `toml:"closing_time"`
	TimeLocation string `toml:"time_location"`
}

// Load загружает конфигурацию из TOML файла и переменных окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "barbershop",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barbershop",
		},
		Redis: RedisConfig{
			TTL:    300,
			Prefix: "barbershop:",
		},
		WhatsApp: WhatsAppConfig{
			CountryCode: "55",
			Timeout:     10,
			RatePerSec:  1,
			Burst:       3,
		},
		Reminders: RemindersConfig{
			PollInterval: 60,
		},
		Shop: ShopConfig{
			Name:         "Barbearia",
			OpeningTime:  "09:00",
			ClosingTime:  "19:00",
			TimeLocation: "Local",
		},
	}
}

// applyEnv переопределяет секреты из переменных окружения
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("WHATSAPP_API_KEY"); v != "" {
		c.WhatsApp.APIKey = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server timeouts must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.WhatsApp.Timeout <= 0 {
		return fmt.Errorf("%w: whatsapp.timeout must be positive", ErrInvalidConfig)
	}
	if c.WhatsApp.RatePerSec <= 0 || c.WhatsApp.Burst <= 0 {
		return fmt.Errorf("%w: whatsapp rate limit must be positive", ErrInvalidConfig)
	}
	if c.Reminders.Enabled && c.Reminders.PollInterval <= 0 {
		return fmt.Errorf("%w: reminders.poll_interval must be positive", ErrInvalidConfig)
	}

	opening, err := types.NewTimeStringFromString(c.Shop.OpeningTime)
	if err != nil {
		return fmt.Errorf("%w: shop.opening_time: %v", ErrInvalidConfig, err)
	}
	closing, err := types.NewTimeStringFromString(c.Shop.ClosingTime)
	if err != nil {
		return fmt.Errorf("%w: shop.closing_time: %v", ErrInvalidConfig, err)
	}
	if !opening.IsBefore(closing) {
		return fmt.Errorf("%w: shop.opening_time must be before shop.closing_time", ErrInvalidConfig)
	}
	if _, err := c.Shop.Location(); err != nil {
		return fmt.Errorf("%w: shop.time_location: %v", ErrInvalidConfig, err)
	}

	return nil
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location возвращает часовой пояс, в котором хранятся записи
// Все вычисления ведутся в локальном времени барбершопа, без конвертаций
func (s ShopConfig) Location() (*time.Location, error) {
	if s.TimeLocation == "" || s.TimeLocation == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(s.TimeLocation)
}

// CacheEnabled возвращает true, если настроен Redis
func (r RedisConfig) CacheEnabled() bool {
	return r.Addr != ""
}
