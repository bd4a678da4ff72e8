package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Hermes    HermesConfig    `yaml:"hermes"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	APIToken    string `yaml:"api_token"`
	RateLimit   int    `yaml:"rate_limit"`
}

// DatabaseConfig points at the buyer directory. Without a URL the profiles
// file is served from memory, and without either the built-in profiles are.
type DatabaseConfig struct {
	URL          string `yaml:"url"`
	ProfilesFile string `yaml:"profiles_file"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

type SentimentConfig struct {
	URL       string `yaml:"url"`
	Token     string `yaml:"token"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type ScoringConfig struct {
	DefaultRegion string `yaml:"default_region"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) SentimentTimeout() time.Duration {
	return time.Duration(c.Sentiment.TimeoutMs) * time.Millisecond
}

// SlogLevel maps the configured level onto slog; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the configuration used when no file or env overrides apply.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
			RateLimit:   120,
		},
		Hermes: HermesConfig{
			URL: "nats://localhost:4222",
		},
		Sentiment: SentimentConfig{
			TimeoutMs: 10000,
		},
		Scoring: ScoringConfig{
			DefaultRegion: "GLOBAL",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TENDER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("TENDER_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("TENDER_API_TOKEN"); v != "" {
		cfg.Server.APIToken = v
	}
	if v := os.Getenv("TENDER_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Server.RateLimit = n
		}
	}
	if v := os.Getenv("TENDER_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("TENDER_PROFILES_FILE"); v != "" {
		cfg.Database.ProfilesFile = v
	}
	if v := os.Getenv("TENDER_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("TENDER_SENTIMENT_URL"); v != "" {
		cfg.Sentiment.URL = v
	}
	if v := os.Getenv("TENDER_SENTIMENT_TOKEN"); v != "" {
		cfg.Sentiment.Token = v
	}
	if v := os.Getenv("TENDER_SENTIMENT_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sentiment.TimeoutMs = n
		}
	}
	if v := os.Getenv("TENDER_DEFAULT_REGION"); v != "" {
		cfg.Scoring.DefaultRegion = v
	}
	if v := os.Getenv("TENDER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TENDER_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
