package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 在未指定 --config 时使用，文件不存在时只读取环境变量
const DefaultConfigPath = "config.yml"

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr       string         `yaml:"listen_addr"`
	Port             string         `yaml:"port"`
	Env              string         `yaml:"env"`
	GinMode          string         `yaml:"gin_mode"`
	Database         DatabaseConfig `yaml:"database"`
	RedisURL         string         `yaml:"redis_url"`
	AllowedOrigins   []string       `yaml:"allowed_origins"`
	ContactRateLimit int            `yaml:"contact_rate_limit"`
}

// DatabaseConfig 描述存储连接
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// IsDev reports whether the service runs in development mode.
func (c AppConfig) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Load 先读取 YAML 配置文件，再用环境变量覆盖，并为缺失项提供默认值。
func Load(path string) (AppConfig, error) {
	var cfg AppConfig

	path = strings.TrimSpace(path)
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return AppConfig{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.Port = envOr("PORT", cfg.Port, "2022")
	cfg.ListenAddr = envOr("LISTEN_ADDR", cfg.ListenAddr, fmt.Sprintf(":%s", cfg.Port))
	cfg.Env = envOr("APP_ENV", cfg.Env, "production")
	cfg.GinMode = envOr("GIN_MODE", cfg.GinMode, "release")
	cfg.Database.Driver = envOr("DATABASE_DRIVER", cfg.Database.Driver, "sqlite")
	cfg.Database.DSN = envOr("DATABASE_DSN", cfg.Database.DSN, "creatorpage.db")
	cfg.RedisURL = envOr("REDIS_URL", cfg.RedisURL, "")

	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	if raw := strings.TrimSpace(os.Getenv("CONTACT_RATE_LIMIT")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return AppConfig{}, fmt.Errorf("invalid CONTACT_RATE_LIMIT %q: %w", raw, err)
		}
		cfg.ContactRateLimit = limit
	}
	if cfg.ContactRateLimit <= 0 {
		cfg.ContactRateLimit = 5
	}

	return cfg, nil
}

// envOr 依次取环境变量、配置文件中的值和默认值
func envOr(key, current, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	if value := strings.TrimSpace(current); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
