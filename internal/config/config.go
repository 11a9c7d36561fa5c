package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RentalAPI RentalAPIConfig `toml:"rental_api"`
	Sessions  SessionsConfig  `toml:"sessions"`
	Auth      AuthConfig      `toml:"auth"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL. Используются только при sessions.storage = "postgres"
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

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RentalAPIConfig настройки внешнего API проката
type RentalAPIConfig struct {
	URL          string `toml:"url"`
	Timeout      int    `toml:"timeout"`
	ImageBaseURL string `toml:"image_base_url"`
}

// SessionsConfig настройки хранения состояния посетителей
type SessionsConfig struct {
	Storage       string `toml:"storage"`
	CookieName    string `toml:"cookie_name"`
	TTLMinutes    int    `toml:"ttl_minutes"`
	SweepSchedule string `toml:"sweep_schedule"`
	Timezone      string `toml:"timezone"`
}

// TTL время жизни неактивной сессии
func (c SessionsConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Location часовой пояс, в котором считается "сегодня"
func (c SessionsConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// AuthConfig настройки cookie с токеном после входа
type AuthConfig struct {
	TokenCookie     string `toml:"token_cookie"`
	TokenMaxAgeDays int    `toml:"token_max_age_days"`
	CookieSecure    bool   `toml:"cookie_secure"`
}

// Load читает конфигурацию из toml файла, затем применяет переменные окружения (и .env, если он есть)
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "bike-rental-bff",
		},
		RentalAPI: RentalAPIConfig{Timeout: 10},
		Sessions: SessionsConfig{
			Storage:       StorageMemory,
			CookieName:    "sid",
			TTLMinutes:    24 * 60,
			SweepSchedule: "@every 10m",
			Timezone:      "Asia/Dhaka",
		},
		Auth: AuthConfig{
			TokenCookie:     "token",
			TokenMaxAgeDays: 30,
		},
	}
}

func (c *Config) applyEnv() error {
	setString(&c.RentalAPI.URL, "RENTAL_API_URL")
	setString(&c.RentalAPI.ImageBaseURL, "RENTAL_API_IMAGE_BASE_URL")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Logs.Level, "LOG_LEVEL")
	setString(&c.Sessions.Storage, "SESSION_STORAGE")

	if err := setInt(&c.Server.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}
	return setInt(&c.Database.Port, "DB_PORT")
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.RentalAPI.URL == "" {
		return fmt.Errorf("%w: rental_api.url is required", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Sessions.Storage != StorageMemory && c.Sessions.Storage != StoragePostgres {
		return fmt.Errorf("%w: sessions.storage must be %q or %q", ErrInvalidConfig, StorageMemory, StoragePostgres)
	}
	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("%w: sessions.ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Sessions.CookieName == "" {
		return fmt.Errorf("%w: sessions.cookie_name is required", ErrInvalidConfig)
	}
	if _, err := c.Sessions.Location(); err != nil {
		return fmt.Errorf("%w: sessions.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Sessions.Storage == StoragePostgres && c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required for postgres session storage", ErrInvalidConfig)
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	*dst = n
	return nil
}
