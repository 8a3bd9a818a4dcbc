package latefee

import (
	"github.com/shopspring/decimal"
)

type PolicyRequest struct {
	Amount          *decimal.Decimal `json:"amount" binding:"required"`
	GraceDays       *int             `json:"grace_days" binding:"omitempty,min=0,max=90"`
	ForfeitDiscount *bool            `json:"forfeit_discount"`
	IsEnabled       *bool            `json:"is_enabled"`
}

type PolicyResponse struct {
	SchoolID        string          `json:"school_id"`
	Amount          decimal.Decimal `json:"amount"`
	GraceDays       int             `json:"grace_days"`
	ForfeitDiscount bool            `json:"forfeit_discount"`
	IsEnabled       bool            `json:"is_enabled"`
	IsDefault       bool            `json:"is_default"`
}

type ApplyRequest struct {
	// AsOf defaults to today (UTC).
	AsOf string `json:"as_of" binding:"omitempty,datetime=2006-01-02"`
}

type SweepResult struct {
	FeesUpdated        int `json:"fees_updated"`
	DiscountsForfeited int `json:"discounts_forfeited"`
	MarkedOverdue      int `json:"marked_overdue"`
	FeesSkipped        int `json:"fees_skipped"`
	FeesFailed         int `json:"fees_failed"`
}

type SchoolSweep struct {
	SchoolID           string `json:"school_id"`
	OK                 bool   `json:"ok"`
	FeesUpdated        int    `json:"fees_updated"`
	DiscountsForfeited int    `json:"discounts_forfeited"`
	Error              string `json:"error,omitempty"`
}

type GlobalResult struct {
	SchoolsProcessed   int           `json:"schools_processed"`
	SchoolsFailed      int           `json:"schools_failed"`
	TotalFeesUpdated   int           `json:"total_fees_updated"`
	TotalDiscountsLost int           `json:"total_discounts_forfeited"`
	Schools            []SchoolSweep `json:"schools"`
}

func mapPolicyResponse(p LateFeePolicy, isDefault bool) PolicyResponse {
	return PolicyResponse{
		SchoolID:        p.SchoolID.String(),
		Amount:          p.Amount,
		GraceDays:       p.GraceDays,
		ForfeitDiscount: p.ForfeitDiscount,
		IsEnabled:       p.IsEnabled,
		IsDefault:       isDefault,
	}
}
