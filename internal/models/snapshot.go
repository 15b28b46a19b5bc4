package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer directions inside a snapshot.
const (
	OfferSent     = "sent"
	OfferReceived = "received"
)

// Task urgency levels inside a snapshot.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
	UrgencyUrgent = "urgent"
)

// Setup nudge priority levels, ordered high < medium < low.
const (
	NudgePriorityHigh   = "high"
	NudgePriorityMedium = "medium"
	NudgePriorityLow    = "low"
)

// PendingPayment is a held escrow awaiting the poster's release decision.
// The ledger places the most urgent payment first; list order is the tie-break.
type PendingPayment struct {
	EscrowID    string          `json:"escrow_id"`
	TaskID      string          `json:"task_id"`
	TaskTitle   string          `json:"task_title"`
	Amount      decimal.Decimal `json:"amount"`
	ActionRoute string          `json:"action_route"`
}

// PendingOffer is an offer the user has sent or received on a task.
type PendingOffer struct {
	ID             string          `json:"id"`
	TaskID         string          `json:"task_id"`
	TaskTitle      string          `json:"task_title"`
	Type           string          `json:"type"`
	ProposedBudget decimal.Decimal `json:"proposed_budget"`
}

// ActiveTask is a task in progress with its next expected step.
type ActiveTask struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Urgency         string     `json:"urgency"`
	NextAction      string     `json:"next_action"`
	NextActionRoute string     `json:"next_action_route"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
}

// ActiveChat is an open conversation, possibly with unread messages.
type ActiveChat struct {
	ID            string     `json:"id"`
	TaskID        string     `json:"task_id"`
	PeerName      string     `json:"peer_name"`
	UnreadCount   int        `json:"unread_count"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
}

// SetupNudge prompts the user to finish an account-setup step.
type SetupNudge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	ActionRoute string `json:"action_route"`
}

// UserStats are historical totals supplied alongside the snapshot.
type UserStats struct {
	TasksPosted    int             `json:"tasks_posted"`
	TasksCompleted int             `json:"tasks_completed"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
}

// UserCurrentStatus is the point-in-time aggregate of a user's pending state,
// supplied by the ledger service. It is read-only input to the prioritization
// engine; freshness is the caller's responsibility.
type UserCurrentStatus struct {
	UserID          string           `json:"user_id"`
	PendingPayments []PendingPayment `json:"pending_payments"`
	PendingOffers   []PendingOffer   `json:"pending_offers"`
	ActiveTasks     []ActiveTask     `json:"active_tasks"`
	ActiveChats     []ActiveChat     `json:"active_chats"`
	SetupNudges     []SetupNudge     `json:"setup_nudges"`
	Stats           UserStats        `json:"stats"`
	FetchedAt       time.Time        `json:"fetched_at"`
}
