package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID         uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uq_payment_receipt,priority:1"`
	StudentFeeID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceiptNumber    string          `gorm:"type:varchar(30);not null;uniqueIndex:uq_payment_receipt,priority:2"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod    string          `gorm:"type:varchar(30);not null"`
	PaymentReference *string         `gorm:"type:varchar(100)"`
	ReceivedBy       *uuid.UUID      `gorm:"type:uuid"`
	Notes            *string         `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Payment) TableName() string {
	return "payments"
}
