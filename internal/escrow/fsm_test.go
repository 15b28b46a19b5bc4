package escrow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"taskbazaar/internal/models"
)

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusPending, StatusHeld) {
		t.Fatal("expected pending -> held to be allowed")
	}
	if !CanTransition(StatusHeld, StatusReleased) {
		t.Fatal("expected held -> released to be allowed")
	}
	if !CanTransition(StatusHeld, StatusRefunded) {
		t.Fatal("expected held -> refunded to be allowed")
	}
	if CanTransition(StatusHeld, StatusPending) {
		t.Fatal("held -> pending must be illegal")
	}
	if CanTransition(StatusReleased, StatusHeld) {
		t.Fatal("released is absorbing")
	}
	if CanTransition(StatusRefunded, StatusHeld) {
		t.Fatal("refunded is absorbing")
	}
	if CanTransition(StatusPending, StatusReleased) {
		t.Fatal("pending -> released must be illegal")
	}
	if CanTransition("bogus", StatusHeld) {
		t.Fatal("unknown status must not transition")
	}
	if CanTransition("bogus", "bogus") {
		t.Fatal("self-transition must not legitimize an unknown status")
	}
	for _, s := range []string{StatusPending, StatusHeld, StatusReleased, StatusRefunded} {
		if !CanTransition(s, s) {
			t.Fatalf("expected %q -> %q to be allowed", s, s)
		}
	}
}

func TestCanRelease(t *testing.T) {
	if CanRelease(StatusPending) {
		t.Fatal("pending escrow must not be releasable")
	}
	if !CanRelease(StatusHeld) {
		t.Fatal("held escrow must be releasable")
	}
	if CanRelease(StatusReleased) {
		t.Fatal("released escrow must not be releasable again")
	}
	if CanRelease(StatusRefunded) {
		t.Fatal("refunded escrow must not be releasable")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusHeld, StatusReleased, StatusRefunded} {
		if !ValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidStatus("completed") {
		t.Fatal("completed is not an escrow status")
	}
}

func validHeld() models.Escrow {
	now := time.Now()
	return models.Escrow{
		ID:           "esc_1",
		TaskID:       "task_1",
		PosterUID:    "poster",
		PerformerUID: "performer",
		Amount:       decimal.NewFromInt(500),
		Status:       StatusHeld,
		HeldAt:       &now,
		CreatedAt:    now,
	}
}

func TestValidateRecord(t *testing.T) {
	if err := ValidateRecord(validHeld()); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}

	e := validHeld()
	e.Status = "limbo"
	if _, ok := asIntegrityError(ValidateRecord(e)); !ok {
		t.Fatal("unknown status must be a data integrity error")
	}

	e = validHeld()
	e.Amount = decimal.Zero
	if _, ok := asIntegrityError(ValidateRecord(e)); !ok {
		t.Fatal("non-positive amount must be a data integrity error")
	}

	e = validHeld()
	e.HeldAt = nil
	if _, ok := asIntegrityError(ValidateRecord(e)); !ok {
		t.Fatal("held without held_at must be a data integrity error")
	}

	e = validHeld()
	now := time.Now()
	e.Status = StatusRefunded
	e.RefundedAt = &now
	if _, ok := asIntegrityError(ValidateRecord(e)); !ok {
		t.Fatal("refunded without refund_reason must be a data integrity error")
	}
	reason := "task cancelled"
	e.RefundReason = &reason
	if err := ValidateRecord(e); err != nil {
		t.Fatalf("expected refunded record with reason to be valid, got %v", err)
	}
}

func asIntegrityError(err error) (*models.DataIntegrityError, bool) {
	ie, ok := err.(*models.DataIntegrityError)
	return ie, ok
}
