package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMinIO    = "minio"
)

// LogConfig controls the global zap logger.
type LogConfig struct {
	Level       string
	Development bool
}

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether enough settings are present to open a connection.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.User != "" && c.Name != ""
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// RedisConfig holds connection settings for the redis key-value backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// FormsConfig points at the hosted forms backend that receives contact and
// volunteer submissions.
type FormsConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// MailConfig tunes the simulated mail provider.
type MailConfig struct {
	From              string
	SendDelay         time.Duration
	ConfirmDelay      time.Duration
	Timeout           time.Duration
	DefaultRecipients []string
}

// RateLimitConfig bounds form submissions per client IP.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost            string
	Port               string
	StorageBackend     string
	AdminToken         string
	ArchiveSubmissions bool
	Log                LogConfig
	Database           DatabaseConfig
	MinIO              MinIOConfig
	Redis              RedisConfig
	Forms              FormsConfig
	Mail               MailConfig
	RateLimit          RateLimitConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:            getEnv("APP_HOST", "localhost:8080"),
		Port:               getEnv("PORT", "8080"),
		StorageBackend:     strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		AdminToken:         getEnv("ADMIN_TOKEN", ""),
		ArchiveSubmissions: getEnvBool("ARCHIVE_SUBMISSIONS", true),
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvBool("LOG_DEVELOPMENT", false),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			Prefix:    getEnv("MINIO_PREFIX", "kv/"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "bwdtc:"),
		},
		Forms: FormsConfig{
			Endpoint: getEnv("FORMS_ENDPOINT", ""),
			Timeout:  getEnvDuration("FORMS_TIMEOUT", 10*time.Second),
		},
		Mail: MailConfig{
			From:              getEnv("MAIL_FROM", "noreply@bridgewaterdems.org"),
			SendDelay:         getEnvDuration("MAIL_SEND_DELAY", time.Second),
			ConfirmDelay:      getEnvDuration("MAIL_CONFIRM_DELAY", 500*time.Millisecond),
			Timeout:           getEnvDuration("MAIL_TIMEOUT", 5*time.Second),
			DefaultRecipients: getEnvList("DEFAULT_RECIPIENTS", nil),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 1),
			Burst: getEnvInt("RATE_LIMIT_BURST", 5),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

// getEnvDuration accepts Go duration strings ("1.5s") or bare milliseconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
