package services

import (
	"fmt"
	"time"

	"taskbazaar/internal/escrow"
	"taskbazaar/internal/models"
)

// ResolveEscrowView derives what the given viewer should see for one escrow:
// badge, message and the actions that are legal right now. It is a pure
// projection of the record it is handed; it never mutates the ledger and the
// allowed actions are only as fresh as the escrow snapshot supplied.
func ResolveEscrowView(e models.Escrow, role string, now time.Time) (models.EscrowView, error) {
	if role != models.RolePoster && role != models.RolePerformer {
		return models.EscrowView{}, &models.ValidationError{Field: "viewer_role", Reason: "must be poster or performer"}
	}
	if err := escrow.ValidateRecord(e); err != nil {
		return models.EscrowView{}, err
	}

	view := models.EscrowView{
		Amount:         e.Amount.StringFixed(2),
		ViewerRole:     role,
		AllowedActions: []string{},
	}

	switch e.Status {
	case escrow.StatusPending:
		view.Badge = models.BadgePaymentPending
		if role == models.RolePoster {
			view.PrimaryMessage = fmt.Sprintf("Complete the payment of ₹%s to secure this task", view.Amount)
			view.AllowedActions = append(view.AllowedActions, models.EscrowActionCompletePayment)
		} else {
			view.PrimaryMessage = "Awaiting payment from the poster"
		}
	case escrow.StatusHeld:
		view.Badge = models.BadgeFundsHeld
		view.PrimaryMessage = fmt.Sprintf("₹%s is held safely in escrow", view.Amount)
		if e.AutoReleaseEnabled && e.AutoReleaseDate != nil {
			days := daysUntil(*e.AutoReleaseDate, now)
			view.DaysUntilAutoRelease = &days
		}
		if role == models.RolePoster && escrow.CanRelease(e.Status) {
			view.AllowedActions = append(view.AllowedActions, models.EscrowActionRelease)
		}
	case escrow.StatusReleased:
		view.Badge = models.BadgeReleased
		if role == models.RolePoster {
			view.PrimaryMessage = fmt.Sprintf("₹%s was released to the tasker", view.Amount)
		} else {
			view.PrimaryMessage = fmt.Sprintf("₹%s was released to you", view.Amount)
		}
	case escrow.StatusRefunded:
		view.Badge = models.BadgeRefunded
		view.PrimaryMessage = fmt.Sprintf("₹%s was refunded to the poster", view.Amount)
		if e.RefundReason != nil {
			view.RefundReason = *e.RefundReason
		}
	}

	return view, nil
}

// daysUntil counts whole days remaining until t, rounding partial days up and
// never going below zero.
func daysUntil(t, now time.Time) int {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}
