package models

import (
	"errors"
	"fmt"
)

var (
	ErrEscrowNotFound      = errors.New("models: no matching escrow found")
	ErrTransactionNotFound = errors.New("models: transaction not found")
	ErrSnapshotNotFound    = errors.New("models: no snapshot for user")
	ErrNoPaymentMethod     = errors.New("models: no saved payment method")
	ErrEscrowNotReleasable = errors.New("models: escrow is not releasable in its current status")
	ErrEscrowNotRefundable = errors.New("models: escrow is not refundable in its current status")
	ErrNotEscrowParty      = errors.New("models: user is neither poster nor performer of this escrow")
)

// ValidationError reports invalid input to a pure function. The caller is
// expected to fix the call site; it is never coerced into a default.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// DataIntegrityError reports a record whose contents violate the ledger
// contract (status outside the enumerated set, missing terminal fields).
// It is distinct from the record being absent.
type DataIntegrityError struct {
	Entity string
	ID     string
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: %s %s: %s", e.Entity, e.ID, e.Reason)
}
