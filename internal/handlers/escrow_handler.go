package handlers

import (
	"encoding/json"
	"net/http"

	"taskbazaar/internal/metrics"
	"taskbazaar/internal/services"
)

type EscrowHandler struct {
	Service *services.EscrowService
}

// GetEscrowView resolves the role-aware escrow projection for one task.
// 404 here means the task has no escrow yet, which is a normal state.
func (h *EscrowHandler) GetEscrowView(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get(":task_id")
	if taskID == "" {
		http.Error(w, "missing task_id", http.StatusBadRequest)
		return
	}
	view, err := h.Service.ViewForTask(r.Context(), taskID, viewerUID(r))
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	json.NewEncoder(w).Encode(view)
}

func (h *EscrowHandler) GetEscrowByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	e, err := h.Service.GetEscrow(r.Context(), id, viewerUID(r))
	if err != nil {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	json.NewEncoder(w).Encode(e)
}

// ReleaseEscrow proxies a poster-confirmed release to the ledger. The handler
// returns 202: the transition is only shown once a fresh snapshot confirms it.
func (h *EscrowHandler) ReleaseEscrow(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	err := h.Service.Release(r.Context(), id, viewerUID(r))
	if err != nil {
		metrics.LedgerMutationsTotal.WithLabelValues("release", "error").Inc()
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	metrics.LedgerMutationsTotal.WithLabelValues("release", "ok").Inc()
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"status": "release_requested"})
}

func (h *EscrowHandler) RefundEscrow(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	err := h.Service.Refund(r.Context(), id, viewerUID(r), req.Reason)
	if err != nil {
		metrics.LedgerMutationsTotal.WithLabelValues("refund", "error").Inc()
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	metrics.LedgerMutationsTotal.WithLabelValues("refund", "ok").Inc()
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"status": "refund_requested"})
}
