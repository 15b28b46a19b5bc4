package models

// Primary action variants produced by the prioritization engine.
const (
	ActionReleasePayment = "release_payment"
	ActionReviewOffer    = "review_offer"
	ActionTaskAttention  = "task_attention"
	ActionOpenChat       = "open_conversation"
)

// PriorityAction is the single highest-priority action to surface to the
// user. Callers receive it together with an ok flag; a false flag means no
// action should be rendered and is never an error.
type PriorityAction struct {
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	ActionLabel string            `json:"action_label"`
	ActionRoute string            `json:"action_route"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Summary card kinds, coarse companion decision to the primary action.
const (
	CardPendingAction   = "pending_action"
	CardIncompleteSetup = "incomplete_setup"
	CardFirstTime       = "first_time"
	CardReturning       = "returning"
)

// SummaryCard selects which full-width home card to show.
type SummaryCard struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	ActionRoute string `json:"action_route,omitempty"`
}
