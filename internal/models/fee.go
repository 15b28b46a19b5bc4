package models

import "github.com/shopspring/decimal"

// FeeBreakdown is the derived platform-fee split for one gross amount.
// It is never persisted; net = gross - fee and fee >= 0 always hold.
type FeeBreakdown struct {
	GrossAmount decimal.Decimal `json:"gross_amount"`
	PlatformFee decimal.Decimal `json:"platform_fee"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	Currency    string          `json:"currency"`
}
