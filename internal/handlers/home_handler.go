package handlers

import (
	"encoding/json"
	"net/http"

	"taskbazaar/internal/metrics"
	"taskbazaar/internal/services"
)

// HomeHandler serves the home-screen decisions: the single primary action and
// the summary card. Both are derived from the same snapshot, so they can
// never disagree about the user's state.
type HomeHandler struct {
	Snapshots *services.SnapshotService
	Priority  *services.PriorityService
}

func (h *HomeHandler) GetPrimaryAction(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "true"
	cs, err := h.Snapshots.Current(r.Context(), viewerUID(r), force)
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	action, ok := h.Priority.SelectPrimaryAction(cs)
	if !ok {
		metrics.PrimaryActionsTotal.WithLabelValues("empty").Inc()
		json.NewEncoder(w).Encode(map[string]any{"empty": true})
		return
	}
	metrics.PrimaryActionsTotal.WithLabelValues(action.Type).Inc()
	json.NewEncoder(w).Encode(map[string]any{"empty": false, "action": action})
}

func (h *HomeHandler) GetSummaryCard(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "true"
	cs, err := h.Snapshots.Current(r.Context(), viewerUID(r), force)
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	json.NewEncoder(w).Encode(h.Priority.SelectSummaryCard(cs))
}
