package rentalapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс для метрик запросов к API
type MetricsCollector interface {
	ObserveUpstream(endpoint, outcome string, duration time.Duration)
}
