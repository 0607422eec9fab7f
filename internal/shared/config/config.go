package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv string
	Port   string

	DB          DBConfig
	RedisAddr   string
	KafkaBroker string
	JWTSecret   string

	Window    WindowConfig
	Retention RetentionConfig
	RateLimit RateLimitConfig

	CORSAllowedOrigins []string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type WindowConfig struct {
	Timezone     string
	Anchor       string // HH:MM
	LookbackDays int
}

type RetentionConfig struct {
	Enabled  bool
	Days     int
	Schedule string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load reads the environment. Call godotenv.Load beforehand in binaries.
func Load() Config {
	return Config{
		AppEnv: getEnvOrDefault("APP_ENV", "development"),
		Port:   getEnvOrDefault("PORT", "5000"),
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnvOrDefault("DB_NAME", "construct_erp"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Window: WindowConfig{
			Timezone:     getEnvOrDefault("APP_TIMEZONE", "Local"),
			Anchor:       getEnvOrDefault("WINDOW_ANCHOR", "05:30"),
			LookbackDays: getEnvInt("HISTORY_LOOKBACK_DAYS", 40),
		},
		Retention: RetentionConfig{
			Enabled:  getEnvBool("RETENTION_ENABLED", false),
			Days:     getEnvInt("RETENTION_DAYS", 40),
			Schedule: getEnvOrDefault("RETENTION_SCHEDULE", "@every 24h"),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
			Window:   getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:3000",
			"https://*.vercel.app",
		}),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Window.LookbackDays <= 0 {
		return fmt.Errorf("HISTORY_LOOKBACK_DAYS must be positive, got %d", c.Window.LookbackDays)
	}
	if c.Retention.Days <= 0 {
		return fmt.Errorf("RETENTION_DAYS must be positive, got %d", c.Retention.Days)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit must allow at least one request per window")
	}
	return nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
