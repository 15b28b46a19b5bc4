package services

import (
	"fmt"
	"sort"

	"taskbazaar/internal/models"
)

// PriorityService decides, out of all of a user's pending signals, the single
// action to surface first, plus the coarse summary-card choice. Both decisions
// are total and deterministic over one snapshot and never fail for well-formed
// input.
type PriorityService struct{}

// SelectPrimaryAction walks the precedence ladder top to bottom and returns
// the first match: pending payment, received offer, active task needing
// attention, unread message. The second return is false when no signal is
// pending; callers render nothing in that case.
func (s *PriorityService) SelectPrimaryAction(cs models.UserCurrentStatus) (models.PriorityAction, bool) {
	if len(cs.PendingPayments) > 0 {
		p := cs.PendingPayments[0]
		return models.PriorityAction{
			Type:        models.ActionReleasePayment,
			Title:       "Release payment",
			Description: fmt.Sprintf("₹%s is waiting for your release for \"%s\"", p.Amount.StringFixed(2), p.TaskTitle),
			ActionLabel: "Release payment",
			ActionRoute: p.ActionRoute,
			Metadata: map[string]string{
				"escrow_id":  p.EscrowID,
				"task_id":    p.TaskID,
				"task_title": p.TaskTitle,
				"amount":     p.Amount.StringFixed(2),
			},
		}, true
	}

	for _, o := range cs.PendingOffers {
		if o.Type != models.OfferReceived {
			continue
		}
		return models.PriorityAction{
			Type:        models.ActionReviewOffer,
			Title:       "New offer received",
			Description: fmt.Sprintf("₹%s offered for \"%s\"", o.ProposedBudget.StringFixed(2), o.TaskTitle),
			ActionLabel: "Review offer",
			ActionRoute: "/tasks/" + o.TaskID + "/offers",
			Metadata: map[string]string{
				"offer_id":        o.ID,
				"task_id":         o.TaskID,
				"task_title":      o.TaskTitle,
				"proposed_budget": o.ProposedBudget.StringFixed(2),
			},
		}, true
	}

	if len(cs.ActiveTasks) > 0 {
		task := cs.ActiveTasks[0]
		for _, t := range cs.ActiveTasks {
			if t.Urgency == models.UrgencyUrgent || t.Urgency == models.UrgencyHigh {
				task = t
				break
			}
		}
		return models.PriorityAction{
			Type:        models.ActionTaskAttention,
			Title:       task.Title,
			Description: task.NextAction,
			ActionLabel: task.NextAction,
			ActionRoute: task.NextActionRoute,
			Metadata: map[string]string{
				"task_id": task.ID,
				"urgency": task.Urgency,
			},
		}, true
	}

	for _, c := range cs.ActiveChats {
		if c.UnreadCount <= 0 {
			continue
		}
		return models.PriorityAction{
			Type:        models.ActionOpenChat,
			Title:       "Unread messages",
			Description: fmt.Sprintf("%d unread from %s", c.UnreadCount, c.PeerName),
			ActionLabel: "Open conversation",
			ActionRoute: "/chats/" + c.ID,
			Metadata: map[string]string{
				"chat_id": c.ID,
				"task_id": c.TaskID,
			},
		}, true
	}

	return models.PriorityAction{}, false
}

// SelectSummaryCard picks which full-width home card to show. Pending-action
// signals (payments, received offers, unread chats) outrank setup nudges,
// which outrank the first-time card; anything else gets the returning-user
// summary. Whenever SelectPrimaryAction returns a match, the result here is
// never first_time.
func (s *PriorityService) SelectSummaryCard(cs models.UserCurrentStatus) models.SummaryCard {
	if s.hasPendingActionSignal(cs) {
		return models.SummaryCard{
			Kind:     models.CardPendingAction,
			Title:    "You have pending actions",
			Subtitle: "Payments, offers or messages are waiting for you",
		}
	}

	if len(cs.SetupNudges) > 0 {
		nudges := SortNudges(cs.SetupNudges)
		top := nudges[0]
		return models.SummaryCard{
			Kind:        models.CardIncompleteSetup,
			Title:       top.Title,
			Subtitle:    top.Description,
			ActionRoute: top.ActionRoute,
		}
	}

	if s.isFirstTime(cs) {
		return models.SummaryCard{
			Kind:        models.CardFirstTime,
			Title:       "Welcome to TaskBazaar",
			Subtitle:    "Post your first task or browse work near you",
			ActionRoute: "/tasks/new",
		}
	}

	return models.SummaryCard{
		Kind:     models.CardReturning,
		Title:    "All caught up",
		Subtitle: fmt.Sprintf("%d tasks posted, %d completed", cs.Stats.TasksPosted, cs.Stats.TasksCompleted),
	}
}

// hasPendingActionSignal mirrors ladder rules 1, 2 and 4; an active task alone
// does not count as a pending-action signal but still counts as activity.
func (s *PriorityService) hasPendingActionSignal(cs models.UserCurrentStatus) bool {
	if len(cs.PendingPayments) > 0 {
		return true
	}
	for _, o := range cs.PendingOffers {
		if o.Type == models.OfferReceived {
			return true
		}
	}
	for _, c := range cs.ActiveChats {
		if c.UnreadCount > 0 {
			return true
		}
	}
	return false
}

func (s *PriorityService) isFirstTime(cs models.UserCurrentStatus) bool {
	return len(cs.PendingPayments) == 0 &&
		len(cs.PendingOffers) == 0 &&
		len(cs.ActiveTasks) == 0 &&
		len(cs.ActiveChats) == 0 &&
		cs.Stats.TasksPosted == 0 &&
		cs.Stats.TasksCompleted == 0
}

var nudgeRank = map[string]int{
	models.NudgePriorityHigh:   0,
	models.NudgePriorityMedium: 1,
	models.NudgePriorityLow:    2,
}

// SortNudges orders setup nudges high < medium < low, keeping the original
// order among equals. Unknown priorities sort last. The input is not modified.
func SortNudges(nudges []models.SetupNudge) []models.SetupNudge {
	out := make([]models.SetupNudge, len(nudges))
	copy(out, nudges)
	sort.SliceStable(out, func(i, j int) bool {
		ri, ok := nudgeRank[out[i].Priority]
		if !ok {
			ri = len(nudgeRank)
		}
		rj, ok := nudgeRank[out[j].Priority]
		if !ok {
			rj = len(nudgeRank)
		}
		return ri < rj
	})
	return out
}
