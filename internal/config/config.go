package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const DefaultForecastURL = "https://api.openweathermap.org/data/2.5/forecast"

// Config читается один раз при старте и дальше не меняется
type Config struct {
	Telegram TelegramConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Dialogue DialogueConfig
	Forecast ForecastConfig
	Log      LogConfig

	HTTPPort string `validate:"required,numeric"`
}

type TelegramConfig struct {
	BotToken    string `validate:"required"`
	WebhookURL  string `validate:"omitempty,url"`
	WebhookPath string `validate:"required,startswith=/"`
	Debug       bool
}

// UseWebhook сообщает, что обновления приходят через webhook, а не long polling
func (c TelegramConfig) UseWebhook() bool {
	return c.WebhookURL != ""
}

type DatabaseConfig struct {
	Username string `validate:"required"`
	Password string
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	Database string `validate:"required"`
}

// DSN собирает строку подключения к MySQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.Username, c.Password, c.Host, c.Port, c.Database)
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int `validate:"gte=0"`
}

// Enabled: пустой адрес оставляет состояние диалогов в памяти процесса
func (c RedisConfig) Enabled() bool {
	return c.Address != ""
}

type DialogueConfig struct {
	CacheSize       int           `validate:"gt=0"`
	TTL             time.Duration `validate:"gt=0"`
	CleanupInterval time.Duration `validate:"gte=1m"`
}

type ForecastConfig struct {
	BaseURL string `validate:"required,url"`
	// 0: без таймаута
	Timeout time.Duration `validate:"gte=0"`
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Pretty bool
}

// LoadEnv пробует несколько возможных путей к .env
func LoadEnv() (string, error) {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	for _, path := range possiblePaths {
		if err := godotenv.Load(path); err == nil {
			abs, _ := filepath.Abs(path)
			return abs, nil
		}
	}

	wd, _ := os.Getwd()
	return "", fmt.Errorf("could not load .env file from any path (working directory %s)", wd)
}

// Load собирает Config из переменных окружения и проверяет его.
func Load() (*Config, error) {
	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken:    os.Getenv("BOT_TOKEN"),
			WebhookURL:  os.Getenv("BOT_WEBHOOK_URL"),
			WebhookPath: getEnv("BOT_WEBHOOK_PATH", "/webhook"),
			Debug:       getEnvBool("BOT_DEBUG", false),
		},
		Database: DatabaseConfig{
			Username: os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			Database: os.Getenv("DB_DATABASE"),
		},
		Redis: RedisConfig{
			Address:  os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Dialogue: DialogueConfig{
			CacheSize:       getEnvInt("DIALOGUE_CACHE_SIZE", 1000),
			TTL:             getEnvDuration("DIALOGUE_TTL", 24*time.Hour),
			CleanupInterval: getEnvDuration("CLEANUP_INTERVAL", 5*time.Minute),
		},
		Forecast: ForecastConfig{
			BaseURL: getEnv("FORECAST_BASE_URL", DefaultForecastURL),
			Timeout: getEnvDuration("FORECAST_HTTP_TIMEOUT", 0),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		HTTPPort: getEnv("HTTP_PORT", "8080"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
