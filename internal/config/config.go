package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Predictor PredictorConfig
	Log       LogConfig
	History   HistoryConfig
	Postgres  PostgresConfig
}

type ServerConfig struct {
	Port               string
	GinMode            string
	CORSAllowedOrigins []string
	SessionTTL         time.Duration
	MaxSessions        int
}

type PredictorConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type HistoryConfig struct {
	Enabled bool
	Limit   int
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

const DefaultPredictorURL = "http://127.0.0.1:8000"

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:               getenv("PORT", "8080"),
			GinMode:            os.Getenv("GIN_MODE"),
			CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
			SessionTTL:         getduration("SESSION_TTL", 30*time.Minute),
			MaxSessions:        getint("SESSION_MAX", 1000),
		},
		Predictor: PredictorConfig{
			BaseURL: strings.TrimRight(getenv("PREDICTOR_URL", DefaultPredictorURL), "/"),
			Timeout: getduration("PREDICTOR_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "json"),
		},
		History: HistoryConfig{
			Enabled: getbool("HISTORY_ENABLED", false),
			Limit:   getint("HISTORY_LIST_LIMIT", 50),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getbool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

func getint(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
