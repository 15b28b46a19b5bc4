package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types recorded by the ledger.
const (
	TransactionEscrow        = "escrow"
	TransactionRelease       = "release"
	TransactionRefund        = "refund"
	TransactionPayout        = "payout"
	TransactionDirectPayment = "direct_payment"
)

// Transaction statuses. Completed, failed and cancelled are terminal.
const (
	TxnStatusPending    = "pending"
	TxnStatusProcessing = "processing"
	TxnStatusCompleted  = "completed"
	TxnStatusFailed     = "failed"
	TxnStatusCancelled  = "cancelled"
)

// Payment methods accepted on transactions.
const (
	PayMethodCard       = "card"
	PayMethodUPI        = "upi"
	PayMethodNetbanking = "netbanking"
	PayMethodWallet     = "wallet"
	PayMethodOther      = "other"
)

// Transaction is an immutable ledger entry for one money movement. For
// escrow/release/refund entries the amount matches the associated escrow.
type Transaction struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	PosterUID     string          `json:"poster_uid"`
	PerformerUID  string          `json:"performer_uid"`
	TaskID        string          `json:"task_id"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
}

// TransactionPage is one page of a user's transaction history as returned by
// the ledger service.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
	Total        int           `json:"total"`
}

var transactionTypes = map[string]struct{}{
	TransactionEscrow:        {},
	TransactionRelease:       {},
	TransactionRefund:        {},
	TransactionPayout:        {},
	TransactionDirectPayment: {},
}

var transactionStatuses = map[string]struct{}{
	TxnStatusPending:    {},
	TxnStatusProcessing: {},
	TxnStatusCompleted:  {},
	TxnStatusFailed:     {},
	TxnStatusCancelled:  {},
}

// ValidTransactionType reports whether t is one of the ledger transaction types.
func ValidTransactionType(t string) bool {
	_, ok := transactionTypes[t]
	return ok
}

// ValidTransactionStatus reports whether s is one of the ledger transaction statuses.
func ValidTransactionStatus(s string) bool {
	_, ok := transactionStatuses[s]
	return ok
}

// IsTerminalTransactionStatus reports whether a transaction in status s can
// never transition again.
func IsTerminalTransactionStatus(s string) bool {
	return s == TxnStatusCompleted || s == TxnStatusFailed || s == TxnStatusCancelled
}

// PaymentMethod is a user's saved default payment instrument, kept by the
// injected store rather than any ambient cache.
type PaymentMethod struct {
	Method    string    `json:"method"`
	Label     string    `json:"label,omitempty"`
	UPIHandle string    `json:"upi_handle,omitempty"`
	CardLast4 string    `json:"card_last4,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
