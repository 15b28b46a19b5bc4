package services

import (
	"time"

	"github.com/shopspring/decimal"

	"taskbazaar/internal/models"
	"taskbazaar/internal/timeutil"
)

// TransactionFilter holds the optional display filters for a transaction
// list. Every predicate is independent; they compose with AND. Amount bounds
// arrive as raw strings: a bound that does not parse as a number is treated as
// no bound for that side, a deliberate forgiving-UI policy rather than an
// accident.
type TransactionFilter struct {
	Status    string `json:"status,omitempty"`
	DateFrom  string `json:"date_from,omitempty"`
	DateTo    string `json:"date_to,omitempty"`
	MinAmount string `json:"min_amount,omitempty"`
	MaxAmount string `json:"max_amount,omitempty"`
}

const filterDateLayout = "2006-01-02"

// FilterTransactions applies the filter to a list, preserving the original
// relative order of matching entries. Date bounds are inclusive of the whole
// calendar day in Asia/Kolkata. A malformed date is a validation error; a
// malformed amount bound is silently dropped.
func FilterTransactions(list []models.Transaction, f TransactionFilter) ([]models.Transaction, error) {
	var from, toExclusive *time.Time
	if f.DateFrom != "" {
		t, err := time.ParseInLocation(filterDateLayout, f.DateFrom, timeutil.Location())
		if err != nil {
			return nil, &models.ValidationError{Field: "date_from", Reason: "expected YYYY-MM-DD"}
		}
		from = &t
	}
	if f.DateTo != "" {
		t, err := time.ParseInLocation(filterDateLayout, f.DateTo, timeutil.Location())
		if err != nil {
			return nil, &models.ValidationError{Field: "date_to", Reason: "expected YYYY-MM-DD"}
		}
		end := t.AddDate(0, 0, 1)
		toExclusive = &end
	}

	var minAmount, maxAmount *decimal.Decimal
	if f.MinAmount != "" {
		if d, err := decimal.NewFromString(f.MinAmount); err == nil {
			minAmount = &d
		}
	}
	if f.MaxAmount != "" {
		if d, err := decimal.NewFromString(f.MaxAmount); err == nil {
			maxAmount = &d
		}
	}

	out := make([]models.Transaction, 0, len(list))
	for _, txn := range list {
		if f.Status != "" && txn.Status != f.Status {
			continue
		}
		created := timeutil.InKolkata(txn.CreatedAt)
		if from != nil && created.Before(*from) {
			continue
		}
		if toExclusive != nil && !created.Before(*toExclusive) {
			continue
		}
		if minAmount != nil && txn.Amount.LessThan(*minAmount) {
			continue
		}
		if maxAmount != nil && txn.Amount.GreaterThan(*maxAmount) {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}
