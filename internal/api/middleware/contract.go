package middleware

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс HTTP метрик
type Metrics interface {
	ObserveHTTP(method, path, status string, duration time.Duration)
}
