package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Redis        RedisConfig        `toml:"redis"`
	Session      SessionConfig      `toml:"session"`
	QueueService QueueServiceConfig `toml:"queue_service"`
	Centers      CentersConfig      `toml:"centers"`
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
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки подключения к redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SessionConfig настройки сессии бронирования
type SessionConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// QueueServiceConfig настройки интеграции с QueueService API
type QueueServiceConfig struct {
	BaseURL          string `toml:"base_url"`
	OrganisationGuid string `toml:"organisation_guid"`
	Timeout          int    `toml:"timeout"` // секунды
}

// CentersConfig настройки списка сервисных центров
type CentersConfig struct {
	// AllowedIDs allow-list центров, которые показываются в UI.
	// Остальные центры из ответа API отбрасываются.
	AllowedIDs      []int64 `toml:"allowed_ids"`
	CacheTTLMinutes int     `toml:"cache_ttl_minutes"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.QueueService.BaseURL == "" {
		return fmt.Errorf("config: queue_service.base_url is required")
	}
	if c.QueueService.OrganisationGuid == "" {
		return fmt.Errorf("config: queue_service.organisation_guid is required")
	}
	if len(c.Centers.AllowedIDs) == 0 {
		return fmt.Errorf("config: centers.allowed_ids must not be empty")
	}
	if c.Centers.CacheTTLMinutes <= 0 {
		return fmt.Errorf("config: centers.cache_ttl_minutes must be positive")
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("config: session.ttl_minutes must be positive")
	}
	return nil
}
