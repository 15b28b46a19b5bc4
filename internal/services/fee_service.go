package services

import (
	"github.com/shopspring/decimal"

	"taskbazaar/internal/models"
)

// FeeService derives the platform-fee breakdown for a gross amount. The rate
// is configuration the service consumes but does not own.
type FeeService struct {
	RateBasisPoints int64
	Currency        string
}

var tenThousand = decimal.NewFromInt(10000)

// CalculateFees splits a positive gross amount into platform fee and net
// payout. The fee is rounded half-up to the paisa; net = gross - fee. Same
// input always yields the same output.
func (s *FeeService) CalculateFees(gross decimal.Decimal) (models.FeeBreakdown, error) {
	if gross.Sign() <= 0 {
		return models.FeeBreakdown{}, &models.ValidationError{Field: "amount", Reason: "must be a positive amount"}
	}
	rate := decimal.NewFromInt(s.RateBasisPoints)
	fee := gross.Mul(rate).Div(tenThousand).Round(2)
	if fee.Sign() < 0 {
		return models.FeeBreakdown{}, &models.ValidationError{Field: "rate", Reason: "fee rate must not be negative"}
	}
	currency := s.Currency
	if currency == "" {
		currency = "INR"
	}
	return models.FeeBreakdown{
		GrossAmount: gross,
		PlatformFee: fee,
		NetAmount:   gross.Sub(fee),
		Currency:    currency,
	}, nil
}

// ParseAmount converts a client-supplied amount string into a decimal,
// rejecting anything that is not a finite positive number.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &models.ValidationError{Field: "amount", Reason: "not a valid number"}
	}
	if d.Sign() <= 0 {
		return decimal.Decimal{}, &models.ValidationError{Field: "amount", Reason: "must be a positive amount"}
	}
	return d, nil
}
