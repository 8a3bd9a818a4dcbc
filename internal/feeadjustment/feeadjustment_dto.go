package feeadjustment

import (
	"encoding/json"

	"go-schoolfee/internal/studentfee"

	"github.com/shopspring/decimal"
)

type AdjustRequest struct {
	Type           string           `json:"type" binding:"required,oneof=remove_late_fee custom_discount waive restore_discount"`
	NewLateFee     *decimal.Decimal `json:"new_late_fee"`
	CustomDiscount *decimal.Decimal `json:"custom_discount"`
	// Reason is checked by the service so a blank reason is reported the
	// same way from every entry point.
	Reason string `json:"reason"`
}

type AdjustmentResponse struct {
	ID            string          `json:"id"`
	StudentFeeID  string          `json:"student_fee_id"`
	Type          string          `json:"type"`
	AdminID       *string         `json:"admin_id"`
	Reason        string          `json:"reason"`
	PreviousValue json.RawMessage `json:"previous_value"`
	NewValue      json.RawMessage `json:"new_value"`
	CreatedAt     string          `json:"created_at"`
}

type AdjustResult struct {
	Fee        studentfee.StudentFeeResponse `json:"fee"`
	Adjustment AdjustmentResponse            `json:"adjustment"`
}

func mapAdjustmentResponse(a FeeAdjustment) AdjustmentResponse {
	resp := AdjustmentResponse{
		ID:            a.ID.String(),
		StudentFeeID:  a.StudentFeeID.String(),
		Type:          a.Type,
		Reason:        a.Reason,
		PreviousValue: json.RawMessage(a.PreviousValue),
		NewValue:      json.RawMessage(a.NewValue),
		CreatedAt:     a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if a.AdminID != nil {
		v := a.AdminID.String()
		resp.AdminID = &v
	}
	return resp
}
