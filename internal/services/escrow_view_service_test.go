package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"taskbazaar/internal/escrow"
	"taskbazaar/internal/models"
)

func heldEscrow() models.Escrow {
	now := time.Now()
	return models.Escrow{
		ID:           "esc_1",
		TaskID:       "task_1",
		PosterUID:    "poster",
		PerformerUID: "performer",
		Amount:       decimal.NewFromInt(1500),
		Status:       escrow.StatusHeld,
		HeldAt:       &now,
		CreatedAt:    now,
	}
}

func hasAction(view models.EscrowView, action string) bool {
	for _, a := range view.AllowedActions {
		if a == action {
			return true
		}
	}
	return false
}

func TestResolveEscrowViewPending(t *testing.T) {
	e := heldEscrow()
	e.Status = escrow.StatusPending
	e.HeldAt = nil
	now := time.Now()

	posterView, err := ResolveEscrowView(e, models.RolePoster, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posterView.Badge != models.BadgePaymentPending {
		t.Errorf("unexpected badge: %s", posterView.Badge)
	}
	if !hasAction(posterView, models.EscrowActionCompletePayment) {
		t.Error("poster must see the complete-payment call to action")
	}
	if hasAction(posterView, models.EscrowActionRelease) {
		t.Error("no release action on a pending escrow")
	}

	performerView, err := ResolveEscrowView(e, models.RolePerformer, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(performerView.AllowedActions) != 0 {
		t.Error("performer gets no actions on a pending escrow")
	}
}

func TestResolveEscrowViewHeld(t *testing.T) {
	e := heldEscrow()
	now := time.Now()

	posterView, err := ResolveEscrowView(e, models.RolePoster, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posterView.Badge != models.BadgeFundsHeld {
		t.Errorf("unexpected badge: %s", posterView.Badge)
	}
	if !hasAction(posterView, models.EscrowActionRelease) {
		t.Error("poster must be offered release while held")
	}

	performerView, err := ResolveEscrowView(e, models.RolePerformer, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasAction(performerView, models.EscrowActionRelease) {
		t.Error("performer must never be offered release")
	}
}

func TestResolveEscrowViewAutoReleaseDays(t *testing.T) {
	now := time.Now()

	e := heldEscrow()
	e.AutoReleaseEnabled = true
	date := now.Add(49 * time.Hour) // 2 days and 1 hour
	e.AutoReleaseDate = &date

	view, err := ResolveEscrowView(e, models.RolePerformer, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.DaysUntilAutoRelease == nil || *view.DaysUntilAutoRelease != 3 {
		t.Fatalf("expected ceil to 3 days, got %v", view.DaysUntilAutoRelease)
	}

	exact := now.Add(48 * time.Hour)
	e.AutoReleaseDate = &exact
	view, err = ResolveEscrowView(e, models.RolePoster, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.DaysUntilAutoRelease == nil || *view.DaysUntilAutoRelease != 2 {
		t.Fatalf("expected exactly 2 days, got %v", view.DaysUntilAutoRelease)
	}

	past := now.Add(-3 * time.Hour)
	e.AutoReleaseDate = &past
	view, err = ResolveEscrowView(e, models.RolePoster, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.DaysUntilAutoRelease == nil || *view.DaysUntilAutoRelease != 0 {
		t.Fatalf("past auto-release must report 0, got %v", view.DaysUntilAutoRelease)
	}
}

func TestResolveEscrowViewTerminalStates(t *testing.T) {
	now := time.Now()

	e := heldEscrow()
	e.Status = escrow.StatusReleased
	e.ReleasedAt = &now
	view, err := ResolveEscrowView(e, models.RolePoster, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Badge != models.BadgeReleased || len(view.AllowedActions) != 0 {
		t.Error("released escrow shows completion and offers nothing")
	}

	e = heldEscrow()
	e.Status = escrow.StatusRefunded
	e.RefundedAt = &now
	reason := "poster cancelled the task"
	e.RefundReason = &reason
	view, err = ResolveEscrowView(e, models.RolePerformer, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Badge != models.BadgeRefunded || view.RefundReason != reason {
		t.Error("refunded escrow surfaces the refund reason")
	}
	if len(view.AllowedActions) != 0 {
		t.Error("refunded escrow offers no actions")
	}
}

func TestResolveEscrowViewErrors(t *testing.T) {
	now := time.Now()

	e := heldEscrow()
	if _, err := ResolveEscrowView(e, "admin", now); err == nil {
		t.Fatal("unknown role must be rejected")
	}

	e.Status = "limbo"
	_, err := ResolveEscrowView(e, models.RolePoster, now)
	if err == nil {
		t.Fatal("malformed status must fail")
	}
	if _, ok := err.(*models.DataIntegrityError); !ok {
		t.Fatalf("expected DataIntegrityError, got %T", err)
	}
}
