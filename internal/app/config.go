package app

import (
	"os"
	"strings"
)

// Config описывает настройки запуска сервиса реестра.
type Config struct {
	// MetricsAddr — адрес HTTP-сервера с /metrics и health-пробами.
	MetricsAddr string
	// PostgresDSN включает PostgreSQL-хранилище, когда задан.
	PostgresDSN string
	// SQLitePath включает файловое хранилище, когда PostgresDSN пуст.
	SQLitePath string
	// KafkaBrokers включает публикацию событий, когда список не пуст.
	KafkaBrokers string
}

// DefaultConfig возвращает конфигурацию для локального запуска без внешних систем.
func DefaultConfig() Config {
	return Config{
		MetricsAddr: ":9090",
	}
}

// ConfigFromEnv читает конфигурацию из окружения поверх значений по умолчанию.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if addr := strings.TrimSpace(os.Getenv("REGISTRY_METRICS_ADDR")); addr != "" {
		cfg.MetricsAddr = addr
	}
	cfg.PostgresDSN = strings.TrimSpace(os.Getenv("REGISTRY_POSTGRES_DSN"))
	cfg.SQLitePath = strings.TrimSpace(os.Getenv("REGISTRY_SQLITE_PATH"))
	cfg.KafkaBrokers = strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))

	return cfg
}
