package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Escrow represents funds captured from a poster and held by the platform for
// one task. The remote ledger service owns the record; this service only
// consumes it. Amounts are INR.
type Escrow struct {
	ID                 string          `json:"id"`
	TaskID             string          `json:"task_id"`
	PosterUID          string          `json:"poster_uid"`
	PerformerUID       string          `json:"performer_uid"`
	Amount             decimal.Decimal `json:"amount"`
	Status             string          `json:"status"`
	HeldAt             *time.Time      `json:"held_at,omitempty"`
	ReleasedAt         *time.Time      `json:"released_at,omitempty"`
	RefundedAt         *time.Time      `json:"refunded_at,omitempty"`
	AutoReleaseEnabled bool            `json:"auto_release_enabled"`
	AutoReleaseDate    *time.Time      `json:"auto_release_date,omitempty"`
	RefundReason       *string         `json:"refund_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// EscrowView is the read-side projection handed to the UI layer: what to show
// and which actions are legal for the given viewer, derived from one snapshot
// of the escrow. Actions always reflect the snapshot they were derived from.
type EscrowView struct {
	Badge                string   `json:"badge"`
	PrimaryMessage       string   `json:"primary_message"`
	AllowedActions       []string `json:"allowed_actions"`
	Amount               string   `json:"amount"`
	ViewerRole           string   `json:"viewer_role"`
	DaysUntilAutoRelease *int     `json:"days_until_auto_release,omitempty"`
	RefundReason         string   `json:"refund_reason,omitempty"`
}

// Viewer roles for escrow projections.
const (
	RolePoster    = "poster"
	RolePerformer = "performer"
)

// Actions the view resolver may offer.
const (
	EscrowActionCompletePayment = "complete_payment"
	EscrowActionRelease         = "release_escrow"
)

// Badges the view resolver emits per escrow status.
const (
	BadgePaymentPending = "payment_pending"
	BadgeFundsHeld      = "funds_held"
	BadgeReleased       = "released"
	BadgeRefunded       = "refunded"
)
