package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-schoolfee/internal/latefee"
	"go-schoolfee/internal/shared/connection"

	"github.com/shopspring/decimal"
)

// Config is read once from the environment (and .env through godotenv in
// cmd/*).
type Config struct {
	Port        string
	JWTSecret   string
	CronSecret  string
	Postgres    connection.PostgresConfig
	RedisAddr   string
	KafkaBroker string

	OverpaymentTolerance decimal.Decimal
	LateFee              latefee.Defaults
	SchoolConcurrency    int
	DefaultDueDay        int
	ReportCacheTTL       time.Duration
	OutboxPollInterval   time.Duration
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CronSecret:  os.Getenv("CRON_SECRET"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		Postgres: connection.PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	var err error
	if cfg.OverpaymentTolerance, err = decimalEnv("PAYMENT_OVERPAYMENT_TOLERANCE", "0"); err != nil {
		return Config{}, err
	}
	if cfg.LateFee.Amount, err = decimalEnv("LATE_FEE_DEFAULT_AMOUNT", "0"); err != nil {
		return Config{}, err
	}
	if cfg.LateFee.GraceDays, err = intEnv("LATE_FEE_GRACE_DAYS", 0); err != nil {
		return Config{}, err
	}
	if cfg.LateFee.ForfeitDiscount, err = boolEnv("LATE_FEE_FORFEIT_DISCOUNT", true); err != nil {
		return Config{}, err
	}
	if cfg.SchoolConcurrency, err = intEnv("BATCH_SCHOOL_CONCURRENCY", 4); err != nil {
		return Config{}, err
	}
	if cfg.DefaultDueDay, err = intEnv("DEFAULT_DUE_DAY", 10); err != nil {
		return Config{}, err
	}
	if cfg.ReportCacheTTL, err = durationEnv("REPORT_CACHE_TTL", 60*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.OutboxPollInterval, err = durationEnv("OUTBOX_POLL_INTERVAL", 3*time.Second); err != nil {
		return Config{}, err
	}

	switch {
	case cfg.OverpaymentTolerance.IsNegative():
		return Config{}, fmt.Errorf("PAYMENT_OVERPAYMENT_TOLERANCE must not be negative")
	case cfg.LateFee.Amount.IsNegative():
		return Config{}, fmt.Errorf("LATE_FEE_DEFAULT_AMOUNT must not be negative")
	case cfg.LateFee.GraceDays < 0:
		return Config{}, fmt.Errorf("LATE_FEE_GRACE_DAYS must not be negative")
	case cfg.DefaultDueDay < 1 || cfg.DefaultDueDay > 28:
		return Config{}, fmt.Errorf("DEFAULT_DUE_DAY must be between 1 and 28")
	case cfg.SchoolConcurrency < 1:
		return Config{}, fmt.Errorf("BATCH_SCHOOL_CONCURRENCY must be at least 1")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func decimalEnv(key, fallback string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
