package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const PaymentRecordedTopic = "school.fee.payment.recorded.v1"

type PaymentRecordedEvent struct {
	EventType     string          `json:"event_type"`
	RequestID     string          `json:"request_id,omitempty"`
	PaymentID     string          `json:"payment_id"`
	ReceiptNumber string          `json:"receipt_number"`
	FeeID         string          `json:"fee_id"`
	SchoolID      string          `json:"school_id"`
	StudentID     string          `json:"student_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Balance       decimal.Decimal `json:"balance"`
	FeeStatus     string          `json:"fee_status"`
	ReceivedBy    string          `json:"received_by"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
