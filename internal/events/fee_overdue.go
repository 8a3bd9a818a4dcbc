package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const FeeOverdueTopic = "school.fee.overdue.v1"

// FeeOverdueEvent is consumed by the reminder subsystem.
type FeeOverdueEvent struct {
	EventType         string          `json:"event_type"`
	RequestID         string          `json:"request_id,omitempty"`
	FeeID             string          `json:"fee_id"`
	SchoolID          string          `json:"school_id"`
	StudentID         string          `json:"student_id"`
	DueDate           string          `json:"due_date"`
	LateFeeAmount     decimal.Decimal `json:"late_fee_amount"`
	Balance           decimal.Decimal `json:"balance"`
	DiscountForfeited bool            `json:"discount_forfeited"`
	OccurredAt        time.Time       `json:"occurred_at"`
}
