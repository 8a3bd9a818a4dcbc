package money_test

import (
	"testing"

	"go-schoolfee/internal/shared/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	cases := []struct {
		base, pct, want string
	}{
		{"100", "10", "10"},
		{"100", "0", "0"},
		{"33.33", "20", "6.67"},
		{"0.05", "50", "0.03"},
		{"1250.50", "15", "187.58"},
	}

	for _, tc := range cases {
		got := money.PercentOf(decimal.RequireFromString(tc.base), decimal.RequireFromString(tc.pct))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "%s%% of %s = %s, got %s", tc.pct, tc.base, tc.want, got)
	}
}

func TestValidPercent(t *testing.T) {
	assert.True(t, money.ValidPercent(decimal.Zero))
	assert.True(t, money.ValidPercent(decimal.NewFromInt(100)))
	assert.False(t, money.ValidPercent(decimal.NewFromInt(-1)))
	assert.False(t, money.ValidPercent(decimal.RequireFromString("100.01")))
}
