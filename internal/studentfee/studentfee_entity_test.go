package studentfee_test

import (
	"testing"

	"go-schoolfee/internal/studentfee"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestStudentFee_Recalculate(t *testing.T) {
	t.Run("fresh fee is pending with discount applied", func(t *testing.T) {
		fee := studentfee.StudentFee{
			BaseAmount:     d("100"),
			DiscountAmount: d("10"),
			Status:         studentfee.StatusPending,
		}
		fee.Recalculate()

		assert.True(t, d("90").Equal(fee.FinalAmount))
		assert.True(t, d("90").Equal(fee.Balance))
		assert.Equal(t, studentfee.StatusPending, fee.Status)
	})

	t.Run("partial then paid", func(t *testing.T) {
		fee := studentfee.StudentFee{BaseAmount: d("90"), Status: studentfee.StatusPending}

		fee.AmountPaid = d("45")
		fee.Recalculate()
		assert.Equal(t, studentfee.StatusPartial, fee.Status)
		assert.True(t, d("45").Equal(fee.Balance))

		fee.AmountPaid = d("90")
		fee.Recalculate()
		assert.Equal(t, studentfee.StatusPaid, fee.Status)
		assert.True(t, fee.Balance.IsZero())
	})

	t.Run("reverting payment restores pending", func(t *testing.T) {
		fee := studentfee.StudentFee{BaseAmount: d("90"), AmountPaid: d("90"), Status: studentfee.StatusPaid}
		fee.AmountPaid = decimal.Zero
		fee.Recalculate()

		assert.Equal(t, studentfee.StatusPending, fee.Status)
		assert.True(t, d("90").Equal(fee.Balance))
	})

	t.Run("late fee keeps fee overdue until settled", func(t *testing.T) {
		fee := studentfee.StudentFee{
			BaseAmount:        d("50"),
			LateFeeAmount:     d("5"),
			DiscountForfeited: true,
			AmountPaid:        d("20"),
			Status:            studentfee.StatusOverdue,
		}
		fee.Recalculate()

		assert.True(t, d("55").Equal(fee.FinalAmount))
		assert.True(t, d("35").Equal(fee.Balance))
		assert.Equal(t, studentfee.StatusOverdue, fee.Status)
	})

	t.Run("waived fee keeps zero balance", func(t *testing.T) {
		fee := studentfee.StudentFee{
			BaseAmount: d("100"),
			AmountPaid: d("30"),
			Status:     studentfee.StatusWaived,
		}
		fee.Recalculate()

		assert.True(t, d("100").Equal(fee.FinalAmount))
		assert.True(t, fee.Balance.IsZero())
		assert.True(t, d("30").Equal(fee.AmountPaid))
		assert.Equal(t, studentfee.StatusWaived, fee.Status)
	})
}

func TestStudentFee_Outstanding(t *testing.T) {
	fee := studentfee.StudentFee{BaseAmount: d("10"), Status: studentfee.StatusPending}
	fee.Recalculate()
	assert.True(t, fee.Outstanding())

	fee.AmountPaid = d("10")
	fee.Recalculate()
	assert.False(t, fee.Outstanding())
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-09", studentfee.MonthKey(2025, 9))
	assert.Equal(t, "2026-01", studentfee.MonthKey(2026, 1))
}
