package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// PayrollConfig holds the rate defaults offered to the payslip preview screen
// and the materialization policy.
type PayrollConfig struct {
	DefaultHourlyRate             decimal.Decimal
	DefaultOvertimeMultiplier     decimal.Decimal
	DefaultLateDeductionPerMinute decimal.Decimal
	StoreTimeout                  time.Duration
	AllowDuplicatePayslips        bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "brgy_portal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll configuration
	hourlyRate, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_HOURLY_RATE", "75"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_HOURLY_RATE: %w", err)
	}
	overtimeMultiplier, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_OVERTIME_MULTIPLIER", "1.25"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_OVERTIME_MULTIPLIER: %w", err)
	}
	lateRate, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_LATE_DEDUCTION_PER_MINUTE", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_LATE_DEDUCTION_PER_MINUTE: %w", err)
	}
	storeTimeout, err := time.ParseDuration(getEnv("PAYROLL_STORE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_STORE_TIMEOUT: %w", err)
	}
	allowDuplicates, err := strconv.ParseBool(getEnv("PAYSLIP_ALLOW_DUPLICATES", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYSLIP_ALLOW_DUPLICATES: %w", err)
	}

	config.Payroll = PayrollConfig{
		DefaultHourlyRate:             hourlyRate,
		DefaultOvertimeMultiplier:     overtimeMultiplier,
		DefaultLateDeductionPerMinute: lateRate,
		StoreTimeout:                  storeTimeout,
		AllowDuplicatePayslips:        allowDuplicates,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME is invalid: %w", err)
	}
	if c.Payroll.DefaultOvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("PAYROLL_DEFAULT_OVERTIME_MULTIPLIER must be at least 1.0")
	}
	if c.Payroll.DefaultHourlyRate.IsNegative() {
		return fmt.Errorf("PAYROLL_DEFAULT_HOURLY_RATE must be non-negative")
	}
	if c.Payroll.DefaultLateDeductionPerMinute.IsNegative() {
		return fmt.Errorf("PAYROLL_DEFAULT_LATE_DEDUCTION_PER_MINUTE must be non-negative")
	}
	rates := map[string]decimal.Decimal{
		"PAYROLL_DEFAULT_HOURLY_RATE":               c.Payroll.DefaultHourlyRate,
		"PAYROLL_DEFAULT_OVERTIME_MULTIPLIER":       c.Payroll.DefaultOvertimeMultiplier,
		"PAYROLL_DEFAULT_LATE_DEDUCTION_PER_MINUTE": c.Payroll.DefaultLateDeductionPerMinute,
	}
	for key, rate := range rates {
		if !rate.Equal(rate.Truncate(4)) {
			return fmt.Errorf("%s must have at most 4 decimal places", key)
		}
	}
	if c.Payroll.StoreTimeout <= 0 {
		return fmt.Errorf("PAYROLL_STORE_TIMEOUT must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
