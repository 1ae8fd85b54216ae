package config

import (
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // Joining validation errors
	"time"    // Durations

	"github.com/joho/godotenv" // For loading .env files
	"github.com/sirupsen/logrus"
)

// Store backends
const (
	BackendMemory = "memory" // In-process sessions
	BackendMySQL  = "mysql"  // Sessions shared through MySQL via GORM
)

// Config holds the application configuration
type Config struct {
	AppPort  string       // Application port
	IsProd   bool         // Is production environment
	LogLevel logrus.Level // Minimum log level

	JWTSecret          string        // Session token signing key
	SessionTTL         time.Duration // Session token lifetime
	SessionIdleTimeout time.Duration // Idle sessions are ended after this
	SweepInterval      time.Duration // How often idle sessions are swept

	StoreBackend string // memory or mysql
	DBUser       string // Database user
	DBPassword   string // Database password
	DBHost       string // Database host
	DBPort       string // Database port
	DBName       string // Database name

	RedisAddr string        // Redis server address, empty disables the cache
	RedisPass string        // Redis password
	RedisDB   int           // Redis database number
	CacheTTL  time.Duration // Lifetime of cached reads

	PaymentDelay time.Duration // Simulated payment processing time
	ChatDelayMin time.Duration // Shortest simulated bot typing time
	ChatDelayMax time.Duration // Longest simulated bot typing time
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:  getEnv("APP_PORT", "8080"),
		IsProd:   os.Getenv("IS_PROD") == "true",
		LogLevel: getEnvLevel("LOG_LEVEL", logrus.InfoLevel),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		SessionTTL:         getEnvDuration("SESSION_TTL", 12*time.Hour),
		SessionIdleTimeout: getEnvDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour),
		SweepInterval:      getEnvDuration("SWEEP_INTERVAL", 5*time.Minute),

		StoreBackend: getEnv("STORE_BACKEND", BackendMemory),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       getEnv("DB_HOST", "127.0.0.1"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBName:       os.Getenv("DB_NAME"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASS"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		CacheTTL:  getEnvDuration("CACHE_TTL", 60*time.Second),

		PaymentDelay: getEnvDuration("PAYMENT_DELAY", 2*time.Second),
		ChatDelayMin: getEnvDuration("CHAT_DELAY_MIN", time.Second),
		ChatDelayMax: getEnvDuration("CHAT_DELAY_MAX", 3*time.Second),
	}
}

// DSN builds the MySQL Data Source Name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.AppPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid APP_PORT %q: must be a number between 1 and 65535", c.AppPort))
	}
	if len(c.JWTSecret) < 16 {
		problems = append(problems, "JWT_SECRET must be at least 16 characters")
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, "SESSION_TTL must be positive")
	}
	if c.SessionIdleTimeout <= 0 || c.SweepInterval <= 0 {
		problems = append(problems, "SESSION_IDLE_TIMEOUT and SWEEP_INTERVAL must be positive")
	}

	switch c.StoreBackend {
	case BackendMemory:
	case BackendMySQL:
		if c.DBUser == "" || c.DBName == "" {
			problems = append(problems, "DB_USER and DB_NAME are required for the mysql store backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid STORE_BACKEND %q: must be %q or %q", c.StoreBackend, BackendMemory, BackendMySQL))
	}

	if c.PaymentDelay < 0 {
		problems = append(problems, "PAYMENT_DELAY cannot be negative")
	}
	if c.ChatDelayMin < 0 || c.ChatDelayMax < c.ChatDelayMin {
		problems = append(problems, "CHAT_DELAY_MIN must be non-negative and not above CHAT_DELAY_MAX")
	}
	if c.RedisAddr != "" && c.CacheTTL <= 0 {
		problems = append(problems, "CACHE_TTL must be positive when REDIS_ADDR is set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if i, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return i
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

func getEnvLevel(key string, fallback logrus.Level) logrus.Level {
	if lvl, err := logrus.ParseLevel(os.Getenv(key)); err == nil {
		return lvl
	}
	return fallback
}
