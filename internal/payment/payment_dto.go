package payment

import (
	"go-schoolfee/internal/studentfee"

	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	StudentFeeID     string           `json:"student_fee_id" binding:"required,uuid"`
	Amount           *decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod    string           `json:"payment_method" binding:"required,oneof=cash bank_transfer card cheque online other"`
	PaymentReference *string          `json:"payment_reference" binding:"omitempty,max=100"`
	Notes            *string          `json:"notes"`
}

type UpdatePaymentRequest struct {
	Amount           *decimal.Decimal `json:"amount"`
	PaymentMethod    string           `json:"payment_method" binding:"omitempty,oneof=cash bank_transfer card cheque online other"`
	PaymentReference *string          `json:"payment_reference" binding:"omitempty,max=100"`
	Notes            *string          `json:"notes"`
}

type PaymentResponse struct {
	ID               string          `json:"id"`
	ReceiptNumber    string          `json:"receipt_number"`
	StudentFeeID     string          `json:"student_fee_id"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentReference *string         `json:"payment_reference"`
	ReceivedBy       *string         `json:"received_by"`
	Notes            *string         `json:"notes"`
	CreatedAt        string          `json:"created_at"`
}

// LedgerResponse is returned by mutations: the payment plus the fee state it
// produced.
type LedgerResponse struct {
	Payment *PaymentResponse              `json:"payment,omitempty"`
	Fee     studentfee.StudentFeeResponse `json:"fee"`
}

func ToResponse(p Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:               p.ID.String(),
		ReceiptNumber:    p.ReceiptNumber,
		StudentFeeID:     p.StudentFeeID.String(),
		Amount:           p.Amount,
		PaymentMethod:    p.PaymentMethod,
		PaymentReference: p.PaymentReference,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if p.ReceivedBy != nil {
		v := p.ReceivedBy.String()
		resp.ReceivedBy = &v
	}
	return resp
}
