package services

import (
	"context"

	"taskbazaar/internal/models"
	"taskbazaar/internal/repositories"
)

// TransactionService serves a user's transaction history. The ledger owns the
// records and the pagination; display filters are applied client-side on the
// fetched page, preserving its order.
type TransactionService struct {
	Ledger *repositories.LedgerClient
}

func (s *TransactionService) History(ctx context.Context, uid string, page, limit int, filter TransactionFilter) (models.TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	tp, err := s.Ledger.GetTransactions(ctx, uid, page, limit)
	if err != nil {
		return models.TransactionPage{}, err
	}
	filtered, err := FilterTransactions(tp.Transactions, filter)
	if err != nil {
		return models.TransactionPage{}, err
	}
	tp.Transactions = filtered
	return tp, nil
}
