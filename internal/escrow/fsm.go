package escrow

import "taskbazaar/internal/models"

// Status constants used by the escrow state machine.
const (
	StatusPending  = "pending"
	StatusHeld     = "held"
	StatusReleased = "released"
	StatusRefunded = "refunded"
)

// released and refunded are absorbing; pending can be refunded when the
// payment is abandoned before capture.
var transitions = map[string]map[string]struct{}{
	StatusPending:  {StatusHeld: {}, StatusRefunded: {}},
	StatusHeld:     {StatusReleased: {}, StatusRefunded: {}},
	StatusReleased: {},
	StatusRefunded: {},
}

// ValidStatus reports whether s is one of the enumerated escrow statuses.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition returns whether an escrow can move from the current status to
// the target status. Staying in place is allowed for any known status.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	if from == to {
		return true
	}
	_, ok = allowed[to]
	return ok
}

// CanRelease reports whether a release action is legal for the status.
// Only held funds can be released.
func CanRelease(status string) bool {
	return status == StatusHeld
}

// CanRefund reports whether a refund action is legal for the status.
func CanRefund(status string) bool {
	return CanTransition(status, StatusRefunded) && status != StatusRefunded
}

// ValidateRecord checks an escrow record fetched from the ledger against the
// contract: status in the enumerated set, positive amount, the timestamp for
// the current status set, and a refund reason on refunded escrows. Violations
// are DataIntegrityError, distinct from the record being absent.
func ValidateRecord(e models.Escrow) error {
	if !ValidStatus(e.Status) {
		return &models.DataIntegrityError{Entity: "escrow", ID: e.ID, Reason: "unknown status " + e.Status}
	}
	if e.Amount.Sign() <= 0 {
		return &models.DataIntegrityError{Entity: "escrow", ID: e.ID, Reason: "non-positive amount"}
	}
	switch e.Status {
	case StatusHeld:
		if e.HeldAt == nil {
			return &models.DataIntegrityError{Entity: "escrow", ID: e.ID, Reason: "held without held_at"}
		}
	case StatusReleased:
		if e.ReleasedAt == nil {
			return &models.DataIntegrityError{Entity: "escrow", ID: e.ID, Reason: "released without released_at"}
		}
	case StatusRefunded:
		if e.RefundedAt == nil {
			return &models.DataIntegrityError{Entity: "escrow", ID: e.ID, Reason: "refunded without refunded_at"}
		}
		if e.RefundReason == nil || *e.RefundReason == "" {
			return &models.DataIntegrityError{Entity: "escrow", ID: e.ID, Reason: "refunded without refund_reason"}
		}
	}
	return nil
}
