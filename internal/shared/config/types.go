// Package config holds the typed configuration sections shared by every layer.
package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port" validate:"min=1,max=65535"`
	Mode           string   `mapstructure:"mode" validate:"oneof=debug release test"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// RateLimit is requests per minute per client IP; 0 disables it. Needs Redis.
	RateLimit int `mapstructure:"rate_limit" validate:"min=0"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects between MySQL (production) and SQLite (development and tests).
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	// Migration is "goose" (versioned scripts) or "auto" (gorm AutoMigrate).
	Migration string `mapstructure:"migration" validate:"omitempty,oneof=goose auto"`
}

// GetDSN returns the MySQL DSN, or the SQLite file path when Driver is sqlite.
func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Database
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret" validate:"required"`
	Issuer string `mapstructure:"issuer"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
	// SeedPolicies writes the default role grants into the policy store at startup.
	SeedPolicies bool `mapstructure:"seed_policies"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address" validate:"omitempty,email"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// NotificationConfig controls the side channel fired by lifecycle events.
// DryRun records notifications as skipped without calling any dispatcher.
type NotificationConfig struct {
	DryRun        bool   `mapstructure:"dry_run"`
	Channel       string `mapstructure:"channel" validate:"oneof=email log"`
	TemplatesPath string `mapstructure:"templates_path"`
}

type SchedulerConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	GenerationInterval time.Duration `mapstructure:"generation_interval" validate:"min=1s"`
	DistributedLock    bool          `mapstructure:"distributed_lock"`
	SystemPrincipalID  uint          `mapstructure:"system_principal_id"`
	Timezone           string        `mapstructure:"timezone"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	Exporter    string `mapstructure:"exporter" validate:"omitempty,oneof=stdout none"`
}

type TelemetryConfig struct {
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
}
