package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Источники каталога и бэкенды хранилищ
const (
	CatalogFixture  = "fixture"
	CatalogPostgres = "postgres"

	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var (
	// ErrLoad возвращается, когда файл конфигурации не удалось прочитать
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid возвращается, когда конфигурация не прошла проверку
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Catalog      CatalogConfig      `toml:"catalog"`
	Bookings     BackendConfig      `toml:"bookings"`
	Favorites    BackendConfig      `toml:"favorites"`
	Dialogs      DialogsConfig      `toml:"dialogs"`
	OwnerService OwnerServiceConfig `toml:"owner_service"`
	CORS         CORSConfig         `toml:"cors"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig подключение к Redis
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CatalogConfig источник каталога
type CatalogConfig struct {
	Source      string `toml:"source"`       // fixture | postgres
	FixturePath string `toml:"fixture_path"` // пусто - встроенный демонстрационный каталог
	Seed        bool   `toml:"seed"`         // залить фикстуру в Postgres при старте
}

// BackendConfig выбор хранилища
type BackendConfig struct {
	Backend string `toml:"backend"`
}

// DialogsConfig сессии диалогов бронирования
type DialogsConfig struct {
	TTLMinutes           int `toml:"ttl_minutes"`
	SweepIntervalSeconds int `toml:"sweep_interval_seconds"`
}

// TTL время жизни неактивной сессии
func (c DialogsConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// SweepInterval период очистки истекших сессий
func (c DialogsConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// OwnerServiceConfig сервис владельцев (приемник запросов на связь)
type OwnerServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// CORSConfig настройки CORS для витрины
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// RateLimitConfig ограничение частоты запросов на клиента
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Default конфигурация по умолчанию: всё в памяти, встроенный каталог
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "rental",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "rental",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "rental-service",
		},
		Catalog: CatalogConfig{
			Source: CatalogFixture,
		},
		Bookings:  BackendConfig{Backend: BackendMemory},
		Favorites: BackendConfig{Backend: BackendMemory},
		Dialogs: DialogsConfig{
			TTLMinutes:           30,
			SweepIntervalSeconds: 60,
		},
		OwnerService: OwnerServiceConfig{
			Timeout: 5,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     20,
			Burst:   40,
		},
	}
}

// Load читает .env (если есть), затем TOML файл поверх значений по умолчанию,
// затем переменные окружения. Отсутствующий файл не является ошибкой.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrLoad, err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	strVars := map[string]*string{
		"DB_HOST":           &c.Database.Host,
		"DB_USER":           &c.Database.User,
		"DB_PASSWORD":       &c.Database.Password,
		"DB_NAME":           &c.Database.DBName,
		"DB_SSLMODE":        &c.Database.SSLMode,
		"REDIS_ADDR":        &c.Redis.Addr,
		"REDIS_PASSWORD":    &c.Redis.Password,
		"LOG_LEVEL":         &c.Logs.Level,
		"LOG_FILE":          &c.Logs.File,
		"CATALOG_SOURCE":    &c.Catalog.Source,
		"CATALOG_FIXTURE":   &c.Catalog.FixturePath,
		"BOOKINGS_BACKEND":  &c.Bookings.Backend,
		"FAVORITES_BACKEND": &c.Favorites.Backend,
		"OWNER_SERVICE_URL": &c.OwnerService.URL,
	}
	for name, dst := range strVars {
		if v, ok := os.LookupEnv(name); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	intVars := map[string]*int{
		"HTTP_PORT": &c.Server.HTTPPort,
		"DB_PORT":   &c.Database.Port,
		"REDIS_DB":  &c.Redis.DB,
	}
	for name, dst := range intVars {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, name, err)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		c.CORS.AllowedOrigins = splitList(v)
	}

	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalid, c.Server.HTTPPort)
	}

	switch c.Catalog.Source {
	case CatalogFixture, CatalogPostgres:
	default:
		return fmt.Errorf("%w: catalog.source must be fixture or postgres, got %q", ErrInvalid, c.Catalog.Source)
	}

	switch c.Bookings.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("%w: bookings.backend must be memory or postgres, got %q", ErrInvalid, c.Bookings.Backend)
	}

	switch c.Favorites.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("%w: favorites.backend must be memory or redis, got %q", ErrInvalid, c.Favorites.Backend)
	}

	if c.NeedsDatabase() && c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required for postgres storage", ErrInvalid)
	}

	if c.Favorites.Backend == BackendRedis && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required for redis favorites", ErrInvalid)
	}

	if c.Dialogs.TTLMinutes < 0 {
		return fmt.Errorf("%w: dialogs.ttl_minutes must not be negative", ErrInvalid)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalid)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalid)
	}

	return nil
}

// NeedsDatabase сообщает, нужен ли Postgres хотя бы одному хранилищу
func (c *Config) NeedsDatabase() bool {
	return c.Catalog.Source == CatalogPostgres || c.Bookings.Backend == BackendPostgres
}
