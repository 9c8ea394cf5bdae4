package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// Config конфигурация приложения
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Database      DatabaseConfig      `toml:"database"`
	LessonService LessonServiceConfig `toml:"lesson_service"`
	Redis         RedisConfig         `toml:"redis"`
	Scheduling    SchedulingConfig    `toml:"scheduling"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = stdout
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки PostgreSQL
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

// LessonServiceConfig настройки бэкенда уроков
type LessonServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// RedisConfig настройки кэша расписаний
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// SchedulingConfig значения планирования по умолчанию
type SchedulingConfig struct {
	Timezone           string `toml:"timezone"`
	GridMinutes        int    `toml:"grid_minutes"`
	AdvanceBookingDays int    `toml:"advance_booking_days"`
	WeeklyFallback     bool   `toml:"weekly_fallback"`
}

// RateLimitConfig ограничение запросов с одного IP
type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"` // IP или CIDR, которым верим X-Forwarded-For
}

// Load читает конфигурацию из файла, применяет значения по умолчанию и переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "lesson-scheduler",
			Path:        "/metrics",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		LessonService: LessonServiceConfig{Timeout: 5},
		Redis:         RedisConfig{Addr: "localhost:6379", TTLSeconds: 30},
		Scheduling: SchedulingConfig{
			Timezone:           domain.DefaultTimezone,
			GridMinutes:        domain.DefaultGridMinutes,
			AdvanceBookingDays: domain.DefaultAdvanceBookingDays,
		},
		RateLimit: RateLimitConfig{RequestsPerSecond: 20, Burst: 40},
	}
}

// applyEnv переопределяет секреты и адреса из окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("LESSON_SERVICE_URL"); v != "" {
		cfg.LessonService.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be in [1, 65535], got %d", c.Server.HTTPPort))
	}
	if c.LessonService.URL == "" {
		errs = append(errs, errors.New("lesson_service.url is required"))
	}
	if c.LessonService.Timeout <= 0 {
		errs = append(errs, errors.New("lesson_service.timeout must be positive"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if _, err := time.LoadLocation(c.Scheduling.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("scheduling.timezone: %w", err))
	}
	grid := c.Scheduling.GridMinutes
	if grid < domain.MinGridMinutes || grid > domain.MaxGridMinutes || domain.MinutesPerDay%grid != 0 {
		errs = append(errs, fmt.Errorf("scheduling.grid_minutes must divide 1440 and be in [%d, %d], got %d",
			domain.MinGridMinutes, domain.MaxGridMinutes, grid))
	}
	days := c.Scheduling.AdvanceBookingDays
	if days < domain.MinAdvanceBookingDays || days > domain.MaxAdvanceBookingDays {
		errs = append(errs, fmt.Errorf("scheduling.advance_booking_days must be in [%d, %d], got %d",
			domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays, days))
	}
	if c.Redis.Enabled && c.Redis.TTLSeconds <= 0 {
		errs = append(errs, errors.New("redis.ttl_seconds must be positive when redis is enabled"))
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, errors.New("rate_limit.requests_per_second must be positive when enabled"))
	}
	for _, proxy := range c.RateLimit.TrustedProxies {
		if _, _, err := net.ParseCIDR(proxy); err != nil && net.ParseIP(proxy) == nil {
			errs = append(errs, fmt.Errorf("rate_limit.trusted_proxies: invalid address %q", proxy))
		}
	}

	return errors.Join(errs...)
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс уроков
func (s SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// Defaults значения планирования в виде доменной конфигурации
func (s SchedulingConfig) Defaults() domain.SchedulingConfig {
	return domain.SchedulingConfig{
		GridMinutes:        s.GridMinutes,
		AdvanceBookingDays: s.AdvanceBookingDays,
	}
}

// TTL время жизни кэша
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}
