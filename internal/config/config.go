package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Export ExportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// Addr returns the host:port the server listens on.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s%s", s.Host, s.Port)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExportConfig holds export writer settings.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from environment variables with the NIYAM_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NIYAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Export defaults
	v.SetDefault("export.dir", "exports")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.host":             "NIYAM_SERVER_HOST",
		"server.port":             "NIYAM_SERVER_PORT",
		"server.read_timeout":     "NIYAM_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "NIYAM_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout": "NIYAM_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":      "NIYAM_SERVER_ENVIRONMENT",
		"log.level":               "NIYAM_LOG_LEVEL",
		"log.format":              "NIYAM_LOG_FORMAT",
		"cors.allowed_origins":    "NIYAM_CORS_ALLOWED_ORIGINS",
		"export.dir":              "NIYAM_EXPORT_DIR",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Comma-separated origins come in as a single string from env.
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = splitTrim(cfg.CORS.AllowedOrigins[0])
	}

	if !strings.HasPrefix(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}

	return &cfg, nil
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
