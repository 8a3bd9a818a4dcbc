package app

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "PAYMENT_OVERPAYMENT_TOLERANCE", "LATE_FEE_DEFAULT_AMOUNT", "LATE_FEE_GRACE_DAYS",
		"LATE_FEE_FORFEIT_DISCOUNT", "BATCH_SCHOOL_CONCURRENCY", "DEFAULT_DUE_DAY", "REPORT_CACHE_TTL",
		"OUTBOX_POLL_INTERVAL", "DB_PORT", "DB_SSLMODE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.OverpaymentTolerance.IsZero())
	assert.True(t, cfg.LateFee.Amount.IsZero())
	assert.Equal(t, 0, cfg.LateFee.GraceDays)
	assert.True(t, cfg.LateFee.ForfeitDiscount)
	assert.Equal(t, 4, cfg.SchoolConcurrency)
	assert.Equal(t, 10, cfg.DefaultDueDay)
	assert.Equal(t, 60*time.Second, cfg.ReportCacheTTL)
	assert.Equal(t, "5432", cfg.Postgres.Port)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PAYMENT_OVERPAYMENT_TOLERANCE", "0.50")
	t.Setenv("LATE_FEE_DEFAULT_AMOUNT", "5")
	t.Setenv("LATE_FEE_GRACE_DAYS", "3")
	t.Setenv("LATE_FEE_FORFEIT_DISCOUNT", "false")
	t.Setenv("REPORT_CACHE_TTL", "2m")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.True(t, cfg.OverpaymentTolerance.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, cfg.LateFee.Amount.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, 3, cfg.LateFee.GraceDays)
	assert.False(t, cfg.LateFee.ForfeitDiscount)
	assert.Equal(t, 2*time.Minute, cfg.ReportCacheTTL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"LATE_FEE_GRACE_DAYS":           "-1",
		"PAYMENT_OVERPAYMENT_TOLERANCE": "abc",
		"DEFAULT_DUE_DAY":               "31",
		"LATE_FEE_FORFEIT_DISCOUNT":     "maybe",
		"BATCH_SCHOOL_CONCURRENCY":      "0",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := LoadConfig()

			assert.Error(t, err)
		})
	}
}
