package feegenerator

import (
	"context"
	"fmt"
	"time"

	"go-schoolfee/internal/feecatalog"
	"go-schoolfee/internal/roster"
	"go-schoolfee/internal/shared/money"
	"go-schoolfee/internal/studentfee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type period struct {
	key   string
	month *string
	// start is the first day of the billed month; only meaningful for
	// monthly structures.
	start time.Time
}

func resolvePeriod(structure feecatalog.FeeStructure, bp BillingPeriod, now time.Time) period {
	switch structure.PeriodType {
	case feecatalog.PeriodMonthly:
		year, month := bp.Year, bp.Month
		if year == 0 || month == 0 {
			year, month = now.Year(), int(now.Month())
		}
		key := studentfee.MonthKey(year, month)
		return period{
			key:   key,
			month: &key,
			start: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		}
	case feecatalog.PeriodTerm:
		term := bp.Term
		if term == 0 {
			term = 1
		}
		return period{key: fmt.Sprintf("%s%d", studentfee.PeriodTermPrefix, term)}
	default:
		return period{key: studentfee.PeriodOneTime}
	}
}

// newStudentFee prices one obligation: base is the structure amount, the
// sibling percent applies only to discountable categories, late fee starts
// at zero.
func newStudentFee(student roster.Student, structure feecatalog.FeeStructure, p period, percent decimal.Decimal, dueDate time.Time) *studentfee.StudentFee {
	structureID := structure.ID
	fee := &studentfee.StudentFee{
		ID:             uuid.New(),
		SchoolID:       student.SchoolID,
		StudentID:      student.ID,
		FeeStructureID: &structureID,
		FeeCategoryID:  structure.FeeCategoryID,
		GradeLevelID:   structure.GradeLevelID,
		AcademicYear:   structure.AcademicYear,
		PeriodKey:      p.key,
		FeeMonth:       p.month,
		BaseAmount:     money.Round2(structure.Amount),
		DueDate:        dueDate,
		Status:         studentfee.StatusPending,
	}

	if structure.Discountable() && percent.IsPositive() {
		fee.DiscountPercent = percent
		fee.DiscountAmount = money.PercentOf(fee.BaseAmount, percent)
	}

	fee.Recalculate()
	return fee
}

// generate inserts fee unless a row for the same (student, structure,
// period) exists, in which case the stored row is returned unchanged.
func generate(ctx context.Context, repo studentfee.Repository, fee *studentfee.StudentFee) (*studentfee.StudentFee, bool, error) {
	created, err := repo.CreateIfAbsent(ctx, fee)
	if err != nil {
		return nil, false, err
	}
	if created {
		return fee, true, nil
	}

	existing, err := repo.FindByPeriod(ctx,
		fee.SchoolID.String(),
		fee.StudentID.String(),
		fee.FeeStructureID.String(),
		fee.PeriodKey,
	)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func anyDiscountable(structures []feecatalog.FeeStructure) bool {
	for _, s := range structures {
		if s.Discountable() {
			return true
		}
	}
	return false
}
