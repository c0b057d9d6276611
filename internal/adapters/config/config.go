package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"

	StateMemory = "memory"
	StateRedis  = "redis"
)

type Config struct {
	HTTPAddr       string             `yaml:"http_addr"`
	StorageBackend string             `yaml:"storage_backend"`
	DataDir        string             `yaml:"data_dir"`
	PostgresDSN    string             `yaml:"postgres_dsn"`
	StateBackend   string             `yaml:"state_backend"`
	RedisAddr      string             `yaml:"redis_addr"`
	RedisPassword  string             `yaml:"redis_password"`
	RedisDB        int                `yaml:"redis_db"`
	WizardTTL      time.Duration      `yaml:"wizard_ttl"`
	BotToken       string             `yaml:"bot_token"`
	AdminIDList    []int64            `yaml:"admin_ids"`
	AdminIDs       map[int64]struct{} `yaml:"-"`
	LogLevel       string             `yaml:"log_level"`
	Env            string             `yaml:"env"`
}

func defaults() Config {
	return Config{
		HTTPAddr:       ":8080",
		StorageBackend: StorageFile,
		DataDir:        "data",
		StateBackend:   StateMemory,
		RedisAddr:      "redis:6379",
		WizardTTL:      24 * time.Hour,
		LogLevel:       "info",
		Env:            "development",
	}
}

// Load reads the optional YAML file at path and then applies environment
// variables on top of it.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path = strings.TrimSpace(path); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.HTTPAddr = valueOrDefault("HTTP_ADDR", cfg.HTTPAddr)
	cfg.StorageBackend = strings.ToLower(valueOrDefault("STORAGE_BACKEND", cfg.StorageBackend))
	cfg.DataDir = valueOrDefault("DATA_DIR", cfg.DataDir)
	cfg.PostgresDSN = valueOrDefault("POSTGRES_DSN", cfg.PostgresDSN)
	cfg.StateBackend = strings.ToLower(valueOrDefault("STATE_BACKEND", cfg.StateBackend))
	cfg.RedisAddr = valueOrDefault("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = valueOrDefault("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.BotToken = valueOrDefault("BOT_TOKEN", cfg.BotToken)
	cfg.LogLevel = valueOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.Env = valueOrDefault("ENV", cfg.Env)

	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = v
	}
	if raw := strings.TrimSpace(os.Getenv("WIZARD_TTL")); raw != "" {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WIZARD_TTL: %w", err)
		}
		cfg.WizardTTL = v
	}

	cfg.AdminIDs = make(map[int64]struct{}, len(cfg.AdminIDList))
	for _, id := range cfg.AdminIDList {
		cfg.AdminIDs[id] = struct{}{}
	}
	for id := range parseAdminIDs(os.Getenv("ADMIN_IDS")) {
		cfg.AdminIDs[id] = struct{}{}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageBackend {
	case StorageFile:
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	switch c.StateBackend {
	case StateMemory, StateRedis:
	default:
		return fmt.Errorf("unknown STATE_BACKEND %q", c.StateBackend)
	}

	if c.WizardTTL <= 0 {
		return fmt.Errorf("WIZARD_TTL must be positive")
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func parseAdminIDs(raw string) map[int64]struct{} {
	res := make(map[int64]struct{})
	parts := strings.Split(raw, ",")
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			continue
		}
		res[v] = struct{}{}
	}
	return res
}
