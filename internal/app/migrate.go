package app

import (
	"go-schoolfee/internal/feeadjustment"
	"go-schoolfee/internal/feecatalog"
	"go-schoolfee/internal/latefee"
	"go-schoolfee/internal/messaging/kafka"
	"go-schoolfee/internal/payment"
	"go-schoolfee/internal/shared/counter"
	"go-schoolfee/internal/siblingdiscount"
	"go-schoolfee/internal/studentfee"

	"gorm.io/gorm"
)

// Migrate creates the tables this service owns. Students and schools belong
// to the roster service and are only read.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&feecatalog.FeeCategory{},
		&feecatalog.FeeStructure{},
		&siblingdiscount.SiblingDiscountTier{},
		&studentfee.StudentFee{},
		&payment.Payment{},
		&counter.Counter{},
		&latefee.LateFeePolicy{},
		&feeadjustment.FeeAdjustment{},
		&kafka.OutboxRecord{},
	)
}
