package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/radhian/commission-system/consts"
)

// Config holds the configuration shared by the http and cron servers.
type Config struct {
	Port           string
	LogLevel       string
	UploadDir      string
	InputDir       string
	ResultCacheTTL time.Duration
	DB             DBConfig
	Cron           CronConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Name     string
	Password string
}

// URI builds the postgres connection string.
func (d DBConfig) URI() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", d.Host, d.Port, d.User, d.Name, d.Password)
}

type CronConfig struct {
	Interval time.Duration
	Workers  int
}

// Load reads an optional .env file, then the environment, falling back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("[Config] No .env file loaded: %v", err)
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		UploadDir:      getEnv("UPLOAD_DIR", consts.DefaultUploadDir),
		InputDir:       getEnv("INPUT_DIR", consts.DefaultInputDir),
		ResultCacheTTL: getEnvAsDuration("RESULT_CACHE_TTL", 15*time.Minute),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Name:     getEnv("DB_NAME", "commission"),
			Password: getEnv("DB_PASSWORD", ""),
		},
		Cron: CronConfig{
			Interval: getEnvAsDuration("CRON_INTERVAL", consts.DefaultIntervalInSec*time.Second),
			Workers:  getEnvAsInt("CRON_WORKERS", consts.DefaultWorkerNumber),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		log.Warnf("[Config] Invalid integer value for %s (%q), using default: %d", key, valueStr, fallback)
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		log.Warnf("[Config] Invalid duration value for %s (%q), using default: %s", key, valueStr, fallback)
		return fallback
	}
	return value
}
